package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/views"
	"github.com/dmitrijs2005/menta/internal/common"
)

// Signup walks the user through the two sign-up steps: the email is checked
// with the server before the remaining details are asked for.
func (a *App) Signup(ctx context.Context, args []string) error {
	if _, err := a.router.Go(views.RouteSignup); err != nil {
		return a.fail(ctx, "signup", err)
	}
	v := views.NewSignupView(a.auth)

	email := ""
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		if email, err = a.ask("Email"); err != nil {
			return err
		}
	}
	v.Form.Email = email

	if err := v.CheckEmail(ctx); err != nil {
		a.printSignupErrors(v)
		a.logger.Debug(ctx, "email check failed", "error", err)
		return err
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &v.Form.FirstName},
		{"Last name", &v.Form.LastName},
		{"Date of birth (YYYY-MM-DD)", &v.Form.DOB},
	}
	for _, f := range fields {
		s, err := a.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = s
	}

	interests, err := a.ask("Interests, comma-separated (" + activityTypeList() + ")")
	if err != nil {
		return err
	}
	v.Form.Interests = models.ParseInterests(interests)

	pw, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		common.WipeByteArray(pw)
		return err
	}
	v.Form.Password, v.Form.ConfirmPassword = string(pw), string(confirm)
	common.WipeByteArray(pw)
	common.WipeByteArray(confirm)

	if err := v.Submit(ctx); err != nil {
		a.printSignupErrors(v)
		a.logger.Debug(ctx, "sign-up failed", "error", err)
		return err
	}

	a.println(views.MsgSignupDone + ". You can now log in.")
	_, _ = a.router.Go(views.RouteLogin)
	return nil
}

func (a *App) printSignupErrors(v *views.SignupView) {
	if v.EmailError != "" {
		a.println("Email:", v.EmailError)
	}
	if v.OtherError != "" {
		a.println("Error:", v.OtherError)
	}
}

// Login exchanges credentials for a token and signs the session in. The
// user chooses whether the token survives a restart.
func (a *App) Login(ctx context.Context, args []string) error {
	if a.isLoggedIn() {
		a.println("Already logged in. Type 'logout' first to switch accounts.")
		return nil
	}
	_, _ = a.router.Go(views.RouteLogin)
	v := views.NewLoginView(a.auth)

	if len(args) > 0 {
		v.Email = args[0]
	} else {
		email, err := a.ask("Email")
		if err != nil {
			return err
		}
		v.Email = email
	}

	pw, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	remember, err := getYesNo(a.reader, "Remember me on this computer?", a.out)
	if err != nil {
		return err
	}
	v.Remember = remember

	route, err := v.Submit(ctx, pw)
	if err != nil {
		a.println(v.Error)
		a.logger.Debug(ctx, "login failed", "error", err)
		return err
	}

	_, _ = a.router.Go(route)
	a.println(a.chrome.Greeting())
	if a.session.User() == nil {
		a.println("Signed in, but your profile could not be loaded. Try 'whoami' later.")
	}
	return nil
}

// Logout clears the session and every stored token.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.setFeed(nil)
	a.setProfile(nil)

	if err := a.auth.Logout(ctx); err != nil {
		return a.fail(ctx, "logout", err)
	}
	_, _ = a.router.Go(views.RouteHome)
	a.println("Logged out.")
	return nil
}

// Whoami prints the session state.
func (a *App) Whoami(ctx context.Context, _ []string) error {
	snap := a.session.Snapshot()
	if snap.Token == "" {
		a.println("Not logged in.")
		return nil
	}

	if snap.User == nil {
		if err := a.session.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Debug(ctx, "profile refresh failed", "error", err)
		}
		snap = a.session.Snapshot()
	}

	if snap.User == nil {
		a.printf("Logged in, profile %s.\n", snap.Status)
		if sub := a.session.Subject(); sub != "" {
			a.println("Token subject:", sub)
		}
		a.printRemembered(ctx)
		return nil
	}

	u := snap.User
	a.printf("%s <%s>\n", u.FullName(), u.Email)
	a.printf("id: %s\n", u.ID)
	a.printf("followers: %d  following: %d\n", u.FollowerCount(), u.FollowingCount())
	if len(u.Interests) > 0 {
		a.println("interests:", strings.Join(u.Interests, ", "))
	}
	a.printRemembered(ctx)
	return nil
}

func (a *App) printRemembered(ctx context.Context) {
	if at, ok := a.session.RememberedSince(ctx); ok {
		a.printf("Remembered on this computer since %s.\n", at.Local().Format(time.DateTime))
	} else {
		a.println("Signed in for this session only.")
	}
}
