package views

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/services"
)

const (
	MsgInvalidLogin = "Invalid email or password"
	MsgLoginFailed  = "Error logging in"
)

// LoginView submits credentials. Errors are shown generically: the view
// never says which of email or password was wrong.
type LoginView struct {
	auth services.AuthService

	Email    string
	Remember bool
	Error    string
}

func NewLoginView(a services.AuthService) *LoginView { return &LoginView{auth: a} }

// Submit logs in and returns the route to show next. The password is wiped
// once sent.
func (v *LoginView) Submit(ctx context.Context, password []byte) (Route, error) {
	v.Error = ""

	err := v.auth.Login(ctx, models.Credential{Email: v.Email, Password: password}, v.Remember)
	if err == nil {
		return RouteFeed, nil
	}

	// Only credential rejections read as bad credentials. Outages and
	// transport failures get MsgLoginFailed so the user does not retype a
	// correct password while the server is down.
	switch {
	case errors.Is(err, client.ErrUnauthorized),
		errors.Is(err, client.ErrRejected),
		errors.Is(err, services.ErrMissingField):
		v.Error = MsgInvalidLogin
	default:
		v.Error = MsgLoginFailed
	}
	return RouteLogin, err
}
