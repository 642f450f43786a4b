package views

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/services"
)

// UploadView is the new-activity form.
type UploadView struct {
	auth Auth
	feed services.FeedService

	Form    models.NewActivity
	Images  []models.Upload
	Created *models.Activity
}

func NewUploadView(a Auth, f services.FeedService) *UploadView {
	return &UploadView{
		auth: a,
		feed: f,
		Form: models.NewActivity{Privacy: models.PrivacyEveryone},
	}
}

func (v *UploadView) Mount(context.Context) error {
	return guard(v.auth)
}

func (v *UploadView) SetType(s string) error {
	t, err := models.ParseActivityType(s)
	if err != nil {
		return err
	}
	v.Form.Type = t
	return nil
}

func (v *UploadView) SetPrivacy(s string) error {
	p, err := models.ParsePrivacy(s)
	if err != nil {
		return err
	}
	v.Form.Privacy = p
	return nil
}

func (v *UploadView) AddImage(u models.Upload) error {
	if len(v.Images) >= services.MaxActivityImages {
		return services.ErrTooManyImages
	}
	v.Images = append(v.Images, u)
	return nil
}

func (v *UploadView) RemoveImage(name string) {
	for i, img := range v.Images {
		if strings.EqualFold(img.Name, name) {
			v.Images = append(v.Images[:i], v.Images[i+1:]...)
			return
		}
	}
}

// Submit uploads the images and posts the activity.
func (v *UploadView) Submit(ctx context.Context) error {
	if err := guard(v.auth); err != nil {
		return err
	}
	a, err := v.feed.Post(ctx, v.Form, v.Images)
	if err != nil {
		return checked(ctx, v.auth, err)
	}
	v.Created = a
	v.Images = nil
	return nil
}
