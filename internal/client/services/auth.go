// Package services contains the application services of the menta CLI.
// Views call them; they call the API gateway and, for authentication, the
// session.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/session"
	"github.com/dmitrijs2005/menta/internal/common"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingField     = errors.New("required field missing")
	ErrInvalidEmail     = errors.New("invalid email address")
)

// SessionManager is the part of the session the auth service drives.
type SessionManager interface {
	Login(ctx context.Context, token string, p session.Persistence) error
	Logout(ctx context.Context) error
}

// AuthService covers sign-up and sign-in.
//
// Validation failures are reported before any API call is made.
type AuthService interface {
	Register(ctx context.Context, r models.Registration) (*models.UserProfile, error)
	CheckEmail(ctx context.Context, email string) error
	Login(ctx context.Context, cred models.Credential, remember bool) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session SessionManager
}

func NewAuthService(c client.Client, s SessionManager) AuthService {
	return &authService{client: c, session: s}
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}
	return nil
}

// ValidateRegistration checks the sign-up form locally.
func ValidateRegistration(r models.Registration) error {
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	required := []struct{ name, value string }{
		{"first name", r.FirstName},
		{"last name", r.LastName},
		{"password", r.Password},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return validateEmail(r.Email)
}

func (a *authService) Register(ctx context.Context, r models.Registration) (*models.UserProfile, error) {
	if err := ValidateRegistration(r); err != nil {
		return nil, err
	}
	return a.client.Register(ctx, r.Request())
}

func (a *authService) CheckEmail(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	return a.client.CheckEmail(ctx, email)
}

// Login exchanges the credential for a token and hands it to the session.
// The password is wiped once sent.
func (a *authService) Login(ctx context.Context, cred models.Credential, remember bool) error {
	defer common.WipeByteArray(cred.Password)

	if strings.TrimSpace(cred.Email) == "" || len(cred.Password) == 0 {
		return ErrMissingField
	}

	tok, err := a.client.Token(ctx, cred.Email, cred.Password)
	if err != nil {
		return err
	}

	p := session.PersistSession
	if remember {
		p = session.PersistDurable
	}
	return a.session.Login(ctx, tok.AccessToken, p)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
