package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/views"
)

// Settings edits one settings section: profile (default), notifications or
// account.
func (a *App) Settings(ctx context.Context, args []string) error {
	if err := a.enter(ctx, views.RouteSettings); err != nil {
		return err
	}
	v := views.NewSettingsView(a.session, a.profiles, a.prefs)
	if err := v.Mount(ctx); err != nil {
		return a.fail(ctx, "settings", err)
	}

	if len(args) > 0 {
		s, err := views.ParseSection(strings.ToLower(args[0]))
		if err != nil {
			a.println("Error:", err)
			return err
		}
		v.Select(s)
	}

	switch v.Section() {
	case views.SectionNotifications:
		return a.editNotifications(ctx, v)
	case views.SectionAccount:
		return a.showAccount(v)
	default:
		return a.editProfile(ctx, v)
	}
}

func (a *App) editProfile(ctx context.Context, v *views.SettingsView) error {
	cur := v.Current()
	if cur == nil {
		return a.fail(ctx, "settings", views.ErrNotLoaded)
	}
	a.println("Press Enter to keep the current value.")

	var u models.ProfileUpdate
	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"First name", cur.FirstName, &u.FirstName},
		{"Last name", cur.LastName, &u.LastName},
		{"Email", cur.Email, &u.Email},
		{"Date of birth", cur.DOB, &u.DOB},
		{"Location", cur.Location, &u.Location},
		{"Bio", cur.Bio, &u.Bio},
	}
	for _, f := range fields {
		s, err := a.ask(f.prompt + " [" + f.current + "]")
		if err != nil {
			return err
		}
		if s != "" {
			*f.dst = &s
		}
	}

	interests, err := a.ask("Interests [" + cur.Interests.String() + "]")
	if err != nil {
		return err
	}
	if interests != "" {
		u.Interests = models.ParseInterests(interests)
	}

	if u.ProfilePicture, err = a.askUpload("Profile picture file (optional)"); err != nil {
		return err
	}
	if u.CoverPhoto, err = a.askUpload("Cover photo file (optional)"); err != nil {
		return err
	}

	if err := v.SaveProfile(ctx, u); err != nil {
		if v.Message != "" {
			a.println(v.Message)
		}
		return a.fail(ctx, "settings", err)
	}
	a.println(v.Message)
	return nil
}

// askUpload reads the file named by the answer, if any.
func (a *App) askUpload(prompt string) (*models.Upload, error) {
	p, err := a.ask(prompt)
	if err != nil || p == "" {
		return nil, err
	}
	data, err := readFile(p)
	if err != nil {
		a.println("Error:", err)
		return nil, err
	}
	return &models.Upload{Name: filepath.Base(p), Data: data}, nil
}

func (a *App) editNotifications(ctx context.Context, v *views.SettingsView) error {
	p, err := v.Notifications(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to read notification preferences", "error", err)
	}

	toggles := []struct {
		prompt string
		dst    *bool
	}{
		{"Email me about comments?", &p.Comments},
		{"Email me about likes?", &p.Likes},
		{"Email me about new followers?", &p.Follows},
	}
	for _, t := range toggles {
		if *t.dst, err = getYesNo(a.reader, t.prompt, a.out); err != nil {
			return err
		}
	}

	modes := strings.Join([]string{string(views.PushEverything), string(views.PushSameAsEmail), string(views.PushNone)}, ", ")
	if err := a.askUntil("Push notifications ("+modes+") ["+string(p.Push)+"]", func(s string) error {
		if s == "" {
			return nil
		}
		m, err := views.ParsePushMode(s)
		if err != nil {
			return err
		}
		p.Push = m
		return nil
	}); err != nil {
		return err
	}

	if err := v.SaveNotifications(ctx, p); err != nil {
		return a.fail(ctx, "settings", err)
	}
	a.println("Notification preferences saved.")
	return nil
}

func (a *App) showAccount(v *views.SettingsView) error {
	if u := v.Current(); u != nil {
		a.printf("Account: %s (id %s)\n", u.Email, u.ID)
	}
	a.println("Type 'logout' to sign out of this computer.")
	return nil
}
