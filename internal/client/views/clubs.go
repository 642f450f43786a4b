package views

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/menta/internal/client/models"
)

var ErrClubIncomplete = errors.New("club name, location and type are required")

const MsgClubSubmitted = "Club details submitted!"

// ClubForm is a club proposal.
type ClubForm struct {
	Name     string
	Location string
	Club     models.Club
}

// ClubsView collects club proposals. The API has no clubs endpoint, so
// submissions are kept in the view.
type ClubsView struct {
	auth Auth

	Form      ClubForm
	Submitted []ClubForm
}

func NewClubsView(a Auth) *ClubsView { return &ClubsView{auth: a} }

func (v *ClubsView) Mount(context.Context) error {
	return guard(v.auth)
}

func (v *ClubsView) SelectClub(name string) error {
	c, err := models.ParseClub(name)
	if err != nil {
		return err
	}
	v.Form.Club = c
	return nil
}

func (v *ClubsView) Submit() (string, error) {
	if err := guard(v.auth); err != nil {
		return "", err
	}
	if strings.TrimSpace(v.Form.Name) == "" || strings.TrimSpace(v.Form.Location) == "" || v.Form.Club == "" {
		return "", ErrClubIncomplete
	}
	v.Submitted = append(v.Submitted, v.Form)
	v.Form = ClubForm{}
	return MsgClubSubmitted, nil
}
