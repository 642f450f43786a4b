package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
)

// MaxActivityImages caps the images attached to one activity.
const MaxActivityImages = 5

var (
	ErrTooManyImages = fmt.Errorf("at most %d images per activity", MaxActivityImages)
	ErrEmptyComment  = errors.New("comment is empty")
)

type FeedService interface {
	Feed(ctx context.Context) ([]models.Activity, error)
	UserActivities(ctx context.Context, userID string) ([]models.Activity, error)
	Post(ctx context.Context, a models.NewActivity, images []models.Upload) (*models.Activity, error)
	Comment(ctx context.Context, activityID, text string) (*models.Comment, error)
	Like(ctx context.Context, activityID string) error
}

type feedService struct {
	client client.Client
}

func NewFeedService(c client.Client) FeedService {
	return &feedService{client: c}
}

func (f *feedService) Feed(ctx context.Context) ([]models.Activity, error) {
	return f.client.ListActivities(ctx)
}

func (f *feedService) UserActivities(ctx context.Context, userID string) ([]models.Activity, error) {
	return f.client.ListUserActivities(ctx, userID)
}

// ValidateActivity checks an activity form locally.
func ValidateActivity(a models.NewActivity, images int) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if _, err := models.ParseActivityType(string(a.Type)); err != nil {
		return err
	}
	if _, err := models.ParsePrivacy(string(a.Privacy)); err != nil {
		return err
	}
	if images > MaxActivityImages {
		return ErrTooManyImages
	}
	return nil
}

// Post uploads images first and then creates the activity referencing them.
func (f *feedService) Post(ctx context.Context, a models.NewActivity, images []models.Upload) (*models.Activity, error) {
	if err := ValidateActivity(a, len(images)); err != nil {
		return nil, err
	}

	if len(images) > 0 {
		paths, err := f.client.UploadImages(ctx, images)
		if err != nil {
			return nil, fmt.Errorf("upload images: %w", err)
		}
		a.Images = paths
	}
	if a.Images == nil {
		a.Images = []string{}
	}

	return f.client.CreateActivity(ctx, a)
}

func (f *feedService) Comment(ctx context.Context, activityID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	return f.client.AddComment(ctx, activityID, text)
}

func (f *feedService) Like(ctx context.Context, activityID string) error {
	return f.client.LikeActivity(ctx, activityID)
}
