package views

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/services"
)

const (
	MsgEmailTaken       = "This email address is already taken"
	MsgPasswordMismatch = "Passwords do not match"
	MsgSignupFailed     = "Error creating account"
	MsgSignupDone       = "Account created successfully"
)

// SignupStep is the current page of the sign-up form.
type SignupStep int

const (
	StepEmail SignupStep = iota
	StepDetails
	StepDone
)

// SignupView is the multi-step account creation form. Email problems are
// reported in EmailError, everything else in OtherError.
type SignupView struct {
	auth services.AuthService

	Form       models.Registration
	Step       SignupStep
	EmailError string
	OtherError string
	Created    *models.UserProfile
}

func NewSignupView(a services.AuthService) *SignupView { return &SignupView{auth: a} }

func (v *SignupView) clear() {
	v.EmailError = ""
	v.OtherError = ""
}

func (v *SignupView) report(err error) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrEmailTaken):
		v.EmailError = MsgEmailTaken
	case errors.Is(err, services.ErrInvalidEmail):
		v.EmailError = err.Error()
	case errors.Is(err, services.ErrPasswordMismatch):
		v.OtherError = MsgPasswordMismatch
	case errors.Is(err, services.ErrMissingField):
		v.OtherError = err.Error()
	case errors.As(err, &apiErr) && apiErr.Detail != "" && !errors.Is(err, client.ErrUnavailable):
		v.OtherError = apiErr.Detail
	default:
		v.OtherError = MsgSignupFailed
	}
}

// CheckEmail validates Form.Email with the server and advances to the
// details step when it is free.
func (v *SignupView) CheckEmail(ctx context.Context) error {
	v.clear()
	if err := v.auth.CheckEmail(ctx, v.Form.Email); err != nil {
		v.report(err)
		return err
	}
	v.Step = StepDetails
	return nil
}

// Submit creates the account. A password mismatch is reported without
// contacting the server.
func (v *SignupView) Submit(ctx context.Context) error {
	v.clear()
	u, err := v.auth.Register(ctx, v.Form)
	if err != nil {
		v.report(err)
		return err
	}
	v.Created = u
	v.Step = StepDone
	v.Form.Password, v.Form.ConfirmPassword = "", ""
	return nil
}
