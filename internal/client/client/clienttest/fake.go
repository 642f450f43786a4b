// Package clienttest provides an in-memory client.Client for tests of the
// packages built on the API gateway.
package clienttest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/menta/internal/client/client"
	"github.com/dmitrijs2005/menta/internal/client/models"
)

var _ client.Client = (*Fake)(nil)

// Fake records calls and answers from its fields. Zero values mean success
// with empty results. Each *Fn hook, when set, overrides the field-based
// answer of its method.
type Fake struct {
	mu    sync.Mutex
	Calls []string

	RegisterFn  func(models.RegisterRequest) (*models.UserProfile, error)
	CheckErr    error
	TokenRet    *models.Token
	TokenErr    error
	MeFn        func(ctx context.Context) (*models.UserProfile, error)
	Users       map[string]*models.UserProfile
	UserErr     error
	UpdateErr   error
	Updated     map[string]string
	UploadErr   error
	Uploaded    []models.Upload
	Activities  []models.Activity
	ActivityErr error
	Created     *models.NewActivity
	CommentErr  error
	LikeErr     error
	ProgressRet []models.ProgressEntry
	ProgressErr error
	FollowErr   error
	SpotsFn     func(models.SpotQuery) ([]models.StudySpot, error)
}

func (f *Fake) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
}

// CallCount returns how many calls have been made so far.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *Fake) Register(_ context.Context, req models.RegisterRequest) (*models.UserProfile, error) {
	f.record("Register")
	if f.RegisterFn != nil {
		return f.RegisterFn(req)
	}
	return &models.UserProfile{ID: "new", Email: req.Email}, nil
}

func (f *Fake) CheckEmail(context.Context, string) error {
	f.record("CheckEmail")
	return f.CheckErr
}

func (f *Fake) Token(context.Context, string, []byte) (*models.Token, error) {
	f.record("Token")
	if f.TokenErr != nil {
		return nil, f.TokenErr
	}
	if f.TokenRet != nil {
		return f.TokenRet, nil
	}
	return &models.Token{AccessToken: "token", TokenType: "bearer"}, nil
}

func (f *Fake) Me(ctx context.Context) (*models.UserProfile, error) {
	f.record("Me")
	if f.MeFn != nil {
		return f.MeFn(ctx)
	}
	return &models.UserProfile{ID: "me"}, nil
}

func (f *Fake) GetUser(_ context.Context, id string) (*models.UserProfile, error) {
	f.record("GetUser")
	if f.UserErr != nil {
		return nil, f.UserErr
	}
	if u, ok := f.Users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return &models.UserProfile{ID: id}, nil
}

func (f *Fake) ListUsers(context.Context) ([]models.UserProfile, error) {
	f.record("ListUsers")
	if f.UserErr != nil {
		return nil, f.UserErr
	}
	out := make([]models.UserProfile, 0, len(f.Users))
	for _, u := range f.Users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *Fake) UpdateUser(_ context.Context, _ string, fields map[string]string) error {
	f.record("UpdateUser")
	f.mu.Lock()
	f.Updated = fields
	f.mu.Unlock()
	return f.UpdateErr
}

func (f *Fake) UploadImages(_ context.Context, files []models.Upload) ([]string, error) {
	f.record("UploadImages")
	if f.UploadErr != nil {
		return nil, f.UploadErr
	}
	f.mu.Lock()
	f.Uploaded = append(f.Uploaded, files...)
	f.mu.Unlock()
	out := make([]string, 0, len(files))
	for _, file := range files {
		out = append(out, "/uploads/"+file.Name)
	}
	return out, nil
}

func (f *Fake) ListActivities(context.Context) ([]models.Activity, error) {
	f.record("ListActivities")
	return f.Activities, f.ActivityErr
}

func (f *Fake) ListUserActivities(_ context.Context, userID string) ([]models.Activity, error) {
	f.record("ListUserActivities")
	if f.ActivityErr != nil {
		return nil, f.ActivityErr
	}
	var out []models.Activity
	for _, a := range f.Activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *Fake) CreateActivity(_ context.Context, a models.NewActivity) (*models.Activity, error) {
	f.record("CreateActivity")
	if f.ActivityErr != nil {
		return nil, f.ActivityErr
	}
	f.mu.Lock()
	f.Created = &a
	f.mu.Unlock()
	return &models.Activity{ID: "created", Title: a.Title, Type: a.Type, Images: a.Images}, nil
}

func (f *Fake) AddComment(_ context.Context, _ string, text string) (*models.Comment, error) {
	f.record("AddComment")
	if f.CommentErr != nil {
		return nil, f.CommentErr
	}
	return &models.Comment{ID: "c", Text: text}, nil
}

func (f *Fake) LikeActivity(context.Context, string) error {
	f.record("LikeActivity")
	return f.LikeErr
}

func (f *Fake) Progress(context.Context, string) ([]models.ProgressEntry, error) {
	f.record("Progress")
	return f.ProgressRet, f.ProgressErr
}

func (f *Fake) Follow(context.Context, string) error {
	f.record("Follow")
	return f.FollowErr
}

func (f *Fake) Unfollow(context.Context, string) error {
	f.record("Unfollow")
	return f.FollowErr
}

func (f *Fake) StudySpots(_ context.Context, q models.SpotQuery) ([]models.StudySpot, error) {
	f.record("StudySpots")
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if f.SpotsFn != nil {
		return f.SpotsFn(q)
	}
	return nil, nil
}
