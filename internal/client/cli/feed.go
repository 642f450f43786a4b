package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/views"
)

// Feed shows everyone's activities.
func (a *App) Feed(ctx context.Context, _ []string) error {
	return a.showFeed(ctx, views.ScopeAll)
}

// MyFeed shows the signed-in user's own activities.
func (a *App) MyFeed(ctx context.Context, _ []string) error {
	return a.showFeed(ctx, views.ScopeMine)
}

func (a *App) showFeed(ctx context.Context, scope views.FeedScope) error {
	if err := a.enter(ctx, views.RouteFeed); err != nil {
		return err
	}
	v := views.NewFeedView(a.session, a.feed, scope)
	if err := v.Mount(ctx); err != nil {
		v.Close()
		return a.fail(ctx, "feed", err)
	}
	a.setFeed(v)
	renderActivities(a.out, v.Items())
	return nil
}

// feedView returns the mounted feed, loading it when nothing is shown yet.
func (a *App) feedView(ctx context.Context) (*views.FeedView, error) {
	if a.lastFeed != nil && a.lastFeed.Activities.State() == views.Loaded {
		return a.lastFeed, nil
	}
	v := views.NewFeedView(a.session, a.feed, views.ScopeAll)
	if err := v.Mount(ctx); err != nil {
		v.Close()
		return nil, err
	}
	a.setFeed(v)
	return v, nil
}

// Like likes the activity with the given id.
func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) < 1 {
		a.println("Usage: like <activity id>")
		return nil
	}
	v, err := a.feedView(ctx)
	if err != nil {
		return a.fail(ctx, "like", err)
	}
	if err := v.Like(ctx, args[0]); err != nil {
		return a.fail(ctx, "like", err)
	}
	for _, it := range v.Items() {
		if it.ID == args[0] {
			a.printf("Liked %q (%d likes)\n", it.Title, it.Likes)
		}
	}
	return nil
}

// Comment adds a comment to an activity. The text is taken from the
// arguments or prompted for.
func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) < 1 {
		a.println("Usage: comment <activity id> [text]")
		return nil
	}
	v, err := a.feedView(ctx)
	if err != nil {
		return a.fail(ctx, "comment", err)
	}

	text := strings.Join(args[1:], " ")
	if text == "" {
		if text, err = getMultiline(a.reader, "Comment", a.out); err != nil {
			return err
		}
	}
	if err := v.Comment(ctx, args[0], text); err != nil {
		return a.fail(ctx, "comment", err)
	}
	a.println("Comment added.")
	return nil
}

// Post fills in the upload form and creates an activity.
func (a *App) Post(ctx context.Context, _ []string) error {
	if err := a.enter(ctx, views.RouteUpload); err != nil {
		return err
	}
	v := views.NewUploadView(a.session, a.feed)
	if err := v.Mount(ctx); err != nil {
		return a.fail(ctx, "post", err)
	}

	if err := a.askUntil("Activity type ("+activityTypeList()+")", v.SetType); err != nil {
		return err
	}

	var err error
	if v.Form.Title, err = a.ask("Title"); err != nil {
		return err
	}
	if v.Form.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if v.Form.Date, err = a.askDefault("Date", today(a.now)); err != nil {
		return err
	}
	if v.Form.Time, err = a.askDefault("Time", a.now().Format("15:04")); err != nil {
		return err
	}
	if err := a.askUntil("Privacy ("+privacyList()+")", v.SetPrivacy); err != nil {
		return err
	}
	if err := a.askUntil("Perceived performance (1-5)", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 5 {
			return fmt.Errorf("enter a number from 1 to 5")
		}
		v.Form.PerceivedPerformance = n
		return nil
	}); err != nil {
		return err
	}
	if v.Form.PrivateNotes, err = a.ask("Private notes (optional)"); err != nil {
		return err
	}

	paths, err := a.ask("Image files, comma-separated (optional, up to 5)")
	if err != nil {
		return err
	}
	for _, p := range strings.Split(paths, ",") {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		data, err := readFile(p)
		if err != nil {
			a.println("Error:", err)
			return err
		}
		if err := v.AddImage(models.Upload{Name: filepath.Base(p), Data: data}); err != nil {
			return a.fail(ctx, "post", err)
		}
	}

	if err := v.Submit(ctx); err != nil {
		return a.fail(ctx, "post", err)
	}
	a.printf("Activity posted (id %s).\n", v.Created.ID)
	if a.lastFeed != nil {
		_ = a.lastFeed.Reload(ctx)
	}
	return nil
}

// askDefault prompts and returns def for an empty answer.
func (a *App) askDefault(prompt, def string) (string, error) {
	s, err := a.ask(fmt.Sprintf("%s [%s]", prompt, def))
	if err != nil || s != "" {
		return s, err
	}
	return def, nil
}

// askUntil prompts until set accepts the answer.
func (a *App) askUntil(prompt string, set func(string) error) error {
	for {
		s, err := a.ask(prompt)
		if err != nil {
			return err
		}
		if err := set(s); err != nil {
			a.println(err)
			continue
		}
		return nil
	}
}
