package client

import (
	"context"

	"github.com/dmitrijs2005/menta/internal/client/models"
)

// Client is the API gateway: one method per endpoint of the menta REST API.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserProfile, error)
	CheckEmail(ctx context.Context, email string) error
	Token(ctx context.Context, email string, password []byte) (*models.Token, error)

	Me(ctx context.Context) (*models.UserProfile, error)
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	UpdateUser(ctx context.Context, id string, fields map[string]string) error
	UploadImages(ctx context.Context, files []models.Upload) ([]string, error)

	ListActivities(ctx context.Context) ([]models.Activity, error)
	ListUserActivities(ctx context.Context, userID string) ([]models.Activity, error)
	CreateActivity(ctx context.Context, a models.NewActivity) (*models.Activity, error)
	AddComment(ctx context.Context, activityID string, text string) (*models.Comment, error)
	LikeActivity(ctx context.Context, activityID string) error

	Progress(ctx context.Context, userID string) ([]models.ProgressEntry, error)

	Follow(ctx context.Context, targetUserID string) error
	Unfollow(ctx context.Context, targetUserID string) error

	StudySpots(ctx context.Context, q models.SpotQuery) ([]models.StudySpot, error)
}
