package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/menta/internal/client/models"
)

// ErrRedirectLogin tells the caller to show the login view instead.
var ErrRedirectLogin = errors.New("login required")

// Auth is the session as views see it.
type Auth interface {
	IsAuthenticated() bool
	User() *models.UserProfile
	Refresh(ctx context.Context) error
	HandleError(ctx context.Context, err error) bool
}

func guard(a Auth) error {
	if !a.IsAuthenticated() {
		return ErrRedirectLogin
	}
	return nil
}

// checked applies the session's unauthorized policy to err. When the
// session logged out, the error also matches ErrRedirectLogin.
func checked(ctx context.Context, a Auth, err error) error {
	if err == nil || errors.Is(err, ErrDiscarded) {
		return err
	}
	if a.HandleError(ctx, err) {
		return fmt.Errorf("%w: %w", ErrRedirectLogin, err)
	}
	return err
}
