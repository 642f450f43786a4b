package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/menta/internal/client/views"
)

// Profile shows a user's profile, activities and progress. Without an id it
// shows the signed-in user.
func (a *App) Profile(ctx context.Context, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	v, err := a.profileView(ctx, id, true)
	if v == nil {
		return a.fail(ctx, "profile", err)
	}

	renderProfile(a.out, v.Profile.Value(), v.FollowerCount(), v.Following(), v.IsSelf())
	a.println("Activities:")
	if v.Activities.State() == views.Failed {
		a.println("  unavailable:", a.message(v.Activities.Err()))
	} else {
		renderActivities(a.out, v.Activities.Value())
	}
	a.renderProgress(v)
	if err != nil {
		a.logger.Debug(ctx, "profile partially loaded", "error", err)
	}
	return err
}

func (a *App) renderProgress(v *views.ProfileView) {
	if v.Progress.State() == views.Failed {
		a.printf("%s progress unavailable: %s\n", v.Category(), a.message(v.Progress.Err()))
		return
	}
	renderProgress(a.out, v.Category(), v.Stats(), v.Calendar(a.now()))
}

// profileView returns a mounted profile view for id, reusing the last one
// unless reload is set. When the profile loaded but its activities or
// progress did not, the view is still returned together with the error.
func (a *App) profileView(ctx context.Context, id string, reload bool) (*views.ProfileView, error) {
	if _, err := a.router.Go(views.RouteProfile); err != nil {
		return nil, err
	}
	if !reload && a.lastProfile != nil && a.lastProfile.Profile.State() == views.Loaded {
		shown := a.lastProfile.Profile.Value().ID
		if shown == id || (id == "" && a.lastProfile.IsSelf()) {
			return a.lastProfile, nil
		}
	}

	v := views.NewProfileView(a.session, a.profiles, a.feed, a.progress, id)
	err := v.Mount(ctx)
	if err != nil && (v.Profile.State() != views.Loaded || errors.Is(err, views.ErrRedirectLogin)) {
		v.Close()
		return nil, err
	}
	a.setProfile(v)
	return v, err
}

// Follow follows a user. The follower count updates at once.
func (a *App) Follow(ctx context.Context, args []string) error {
	return a.setFollow(ctx, args, true)
}

// Unfollow stops following a user.
func (a *App) Unfollow(ctx context.Context, args []string) error {
	return a.setFollow(ctx, args, false)
}

func (a *App) setFollow(ctx context.Context, args []string, follow bool) error {
	op := "follow"
	if !follow {
		op = "unfollow"
	}
	if len(args) < 1 {
		a.printf("Usage: %s <user id>\n", op)
		return nil
	}

	v, err := a.profileView(ctx, args[0], false)
	if v == nil {
		return a.fail(ctx, op, err)
	}
	if follow {
		err = v.Follow(ctx)
	} else {
		err = v.Unfollow(ctx)
	}
	if err != nil {
		return a.fail(ctx, op, err)
	}

	name := v.Profile.Value().FullName()
	if follow {
		a.printf("Following %s (%d followers)\n", name, v.FollowerCount())
	} else {
		a.printf("Unfollowed %s (%d followers)\n", name, v.FollowerCount())
	}
	return nil
}

// Users lists registered users.
func (a *App) Users(ctx context.Context, _ []string) error {
	if err := a.enter(ctx, views.RouteProfile); err != nil {
		return err
	}
	users, err := a.profiles.List(ctx)
	if err != nil {
		if a.session.HandleError(ctx, err) {
			err = fmt.Errorf("%w: %w", views.ErrRedirectLogin, err)
		}
		return a.fail(ctx, "users", err)
	}
	if len(users) == 0 {
		a.println("No users.")
		return nil
	}

	self := a.session.User()
	for _, u := range users {
		mark := ""
		switch {
		case self != nil && u.ID == self.ID:
			mark = " (you)"
		case self != nil && self.IsFollowing(u.ID):
			mark = " (following)"
		}
		a.printf("[%s] %s%s\n", u.ID, u.FullName(), mark)
	}
	return nil
}

// Progress shows the signed-in user's progress, optionally for one
// category.
func (a *App) Progress(ctx context.Context, args []string) error {
	v, err := a.profileView(ctx, "", false)
	if v == nil {
		return a.fail(ctx, "progress", err)
	}
	if len(args) > 0 {
		if err := v.SelectCategory(args[0]); err != nil {
			a.println("Error:", err)
			return err
		}
	}
	a.renderProgress(v)
	return v.Progress.Err()
}
