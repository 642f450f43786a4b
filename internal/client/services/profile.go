package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
)

var ErrFollowSelf = errors.New("cannot follow yourself")

type ProfileService interface {
	Me(ctx context.Context) (*models.UserProfile, error)
	Get(ctx context.Context, id string) (*models.UserProfile, error)
	List(ctx context.Context) ([]models.UserProfile, error)
	Follow(ctx context.Context, self, target string) error
	Unfollow(ctx context.Context, self, target string) error
	Update(ctx context.Context, current models.UserProfile, u models.ProfileUpdate) error
}

type profileService struct {
	client client.Client
}

func NewProfileService(c client.Client) ProfileService {
	return &profileService{client: c}
}

func (p *profileService) Me(ctx context.Context) (*models.UserProfile, error) {
	return p.client.Me(ctx)
}

func (p *profileService) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	return p.client.GetUser(ctx, id)
}

func (p *profileService) List(ctx context.Context) ([]models.UserProfile, error) {
	return p.client.ListUsers(ctx)
}

func (p *profileService) Follow(ctx context.Context, self, target string) error {
	if self == target {
		return ErrFollowSelf
	}
	return p.client.Follow(ctx, target)
}

func (p *profileService) Unfollow(ctx context.Context, self, target string) error {
	if self == target {
		return ErrFollowSelf
	}
	return p.client.Unfollow(ctx, target)
}

func (p *profileService) uploadOne(ctx context.Context, u *models.Upload) (string, error) {
	paths, err := p.client.UploadImages(ctx, []models.Upload{*u})
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("upload %s: no path returned", u.Name)
	}
	return paths[0], nil
}

// Update uploads changed images, then sends the full field set: fields the
// user left untouched are taken from current.
func (p *profileService) Update(ctx context.Context, current models.UserProfile, u models.ProfileUpdate) error {
	if current.ID == "" {
		return fmt.Errorf("%w: user id", ErrMissingField)
	}
	if u.Email != nil {
		if err := validateEmail(*u.Email); err != nil {
			return err
		}
	}

	fields := u.Fields(current)

	if u.ProfilePicture != nil {
		path, err := p.uploadOne(ctx, u.ProfilePicture)
		if err != nil {
			return fmt.Errorf("upload profile picture: %w", err)
		}
		fields["profile_picture"] = path
	}
	if u.CoverPhoto != nil {
		path, err := p.uploadOne(ctx, u.CoverPhoto)
		if err != nil {
			return fmt.Errorf("upload cover photo: %w", err)
		}
		fields["cover_photo"] = path
	}

	return p.client.UpdateUser(ctx, current.ID, fields)
}
