package views

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/services"
)

var ErrNoSuchActivity = errors.New("no such activity in feed")

// FeedScope picks whose activities a FeedView lists.
type FeedScope int

const (
	ScopeAll FeedScope = iota
	ScopeMine
)

// FeedView lists activities and handles likes and comments. Like counts
// change optimistically and are only replaced by server values on Reload.
type FeedView struct {
	auth  Auth
	feed  services.FeedService
	scope FeedScope

	Activities Loader[[]models.Activity]
}

func NewFeedView(a Auth, f services.FeedService, scope FeedScope) *FeedView {
	return &FeedView{auth: a, feed: f, scope: scope}
}

func (v *FeedView) Mount(ctx context.Context) error {
	return v.Reload(ctx)
}

func (v *FeedView) Reload(ctx context.Context) error {
	if err := guard(v.auth); err != nil {
		return err
	}

	err := v.Activities.Load(ctx, func(ctx context.Context) ([]models.Activity, error) {
		if v.scope == ScopeMine {
			u := v.auth.User()
			if u == nil {
				if err := v.auth.Refresh(ctx); err != nil {
					return nil, err
				}
				if u = v.auth.User(); u == nil {
					return nil, ErrRedirectLogin
				}
			}
			return v.feed.UserActivities(ctx, u.ID)
		}
		return v.feed.Feed(ctx)
	})
	return checked(ctx, v.auth, err)
}

func (v *FeedView) Items() []models.Activity { return v.Activities.Value() }

func (v *FeedView) adjust(id string, fn func(a *models.Activity)) bool {
	found := false
	v.Activities.Update(func(list *[]models.Activity) {
		for i := range *list {
			if (*list)[i].ID == id {
				fn(&(*list)[i])
				found = true
				return
			}
		}
	})
	return found
}

// Like bumps the like count right away and undoes it if the call fails.
func (v *FeedView) Like(ctx context.Context, activityID string) error {
	if err := guard(v.auth); err != nil {
		return err
	}
	if !v.adjust(activityID, func(a *models.Activity) { a.Likes++ }) {
		return ErrNoSuchActivity
	}

	if err := v.feed.Like(ctx, activityID); err != nil {
		v.adjust(activityID, func(a *models.Activity) { a.Likes-- })
		return checked(ctx, v.auth, err)
	}
	return nil
}

// Comment posts text and appends the created comment to the activity.
func (v *FeedView) Comment(ctx context.Context, activityID, text string) error {
	if err := guard(v.auth); err != nil {
		return err
	}

	if !v.adjust(activityID, func(*models.Activity) {}) {
		return ErrNoSuchActivity
	}

	c, err := v.feed.Comment(ctx, activityID, text)
	if err != nil {
		return checked(ctx, v.auth, err)
	}
	v.adjust(activityID, func(a *models.Activity) { a.Comments = append(a.Comments, *c) })
	return nil
}

func (v *FeedView) Close() { v.Activities.Close() }
