package views

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/services"
)

var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)

// CalendarDays is the span of the progress calendar.
const CalendarDays = 28

// ProfileView shows a user's profile, activities and progress. Follow and
// unfollow adjust the follower count by one immediately; Reload replaces
// the adjusted count with the server's.
type ProfileView struct {
	auth     Auth
	profiles services.ProfileService
	feed     services.FeedService
	progress services.ProgressService

	// userID is the profile shown; "" means the signed-in user.
	userID   string
	category models.Category

	followerDelta int
	following     *bool

	Profile    Loader[models.UserProfile]
	Activities Loader[[]models.Activity]
	Progress   Loader[models.Progress]
}

func NewProfileView(a Auth, p services.ProfileService, f services.FeedService, pr services.ProgressService, userID string) *ProfileView {
	return &ProfileView{
		auth:     a,
		profiles: p,
		feed:     f,
		progress: pr,
		userID:   userID,
		category: models.CategoryActivities,
	}
}

func (v *ProfileView) Mount(ctx context.Context) error {
	return v.Reload(ctx)
}

// Reload fetches the profile, then its activities and progress.
func (v *ProfileView) Reload(ctx context.Context) error {
	if err := guard(v.auth); err != nil {
		return err
	}

	err := v.Profile.Load(ctx, func(ctx context.Context) (models.UserProfile, error) {
		var (
			u   *models.UserProfile
			err error
		)
		if v.userID == "" {
			u, err = v.profiles.Me(ctx)
		} else {
			u, err = v.profiles.Get(ctx, v.userID)
		}
		if err != nil {
			return models.UserProfile{}, err
		}
		return *u, nil
	})
	if err != nil {
		return checked(ctx, v.auth, err)
	}
	v.followerDelta = 0
	v.following = nil

	// Activities and progress are fetched independently; one failing does
	// not keep the other from loading.
	id := v.Profile.Value().ID
	actErr := v.Activities.Load(ctx, func(ctx context.Context) ([]models.Activity, error) {
		return v.feed.UserActivities(ctx, id)
	})
	progErr := v.Progress.Load(ctx, func(ctx context.Context) (models.Progress, error) {
		return v.progress.Progress(ctx, id)
	})
	return checked(ctx, v.auth, errors.Join(actErr, progErr))
}

// IsSelf reports whether the profile belongs to the signed-in user.
func (v *ProfileView) IsSelf() bool {
	if v.userID == "" {
		return true
	}
	u := v.auth.User()
	return u != nil && u.ID == v.userID
}

func (v *ProfileView) FollowerCount() int {
	return v.Profile.Value().FollowerCount() + v.followerDelta
}

func (v *ProfileView) FollowingCount() int {
	return v.Profile.Value().FollowingCount()
}

// Following reports whether the signed-in user follows this profile.
func (v *ProfileView) Following() bool {
	if v.following != nil {
		return *v.following
	}
	u := v.auth.User()
	if u == nil {
		return false
	}
	return slices.Contains(v.Profile.Value().Followers, u.ID)
}

func (v *ProfileView) self() string {
	if u := v.auth.User(); u != nil {
		return u.ID
	}
	return ""
}

func (v *ProfileView) setFollow(ctx context.Context, follow bool) error {
	if err := guard(v.auth); err != nil {
		return err
	}
	if v.Profile.State() != Loaded {
		return ErrNotLoaded
	}

	if follow == v.Following() {
		if follow {
			return ErrAlreadyFollowing
		}
		return ErrNotFollowing
	}

	target := v.Profile.Value().ID
	delta, prevFollowing := 1, v.following
	call := v.profiles.Follow
	if !follow {
		delta = -1
		call = v.profiles.Unfollow
	}

	v.followerDelta += delta
	v.following = &follow

	if err := call(ctx, v.self(), target); err != nil {
		v.followerDelta -= delta
		v.following = prevFollowing
		return checked(ctx, v.auth, err)
	}
	return nil
}

func (v *ProfileView) Follow(ctx context.Context) error   { return v.setFollow(ctx, true) }
func (v *ProfileView) Unfollow(ctx context.Context) error { return v.setFollow(ctx, false) }

func (v *ProfileView) Category() models.Category { return v.category }

// SelectCategory switches the progress tracker.
func (v *ProfileView) SelectCategory(name string) error {
	c, err := models.ParseCategory(name)
	if err != nil {
		return err
	}
	v.category = c
	return nil
}

// Stats is the progress of the selected category.
func (v *ProfileView) Stats() models.Progress {
	return v.Progress.Value().Filter(v.category)
}

// Calendar is the activity calendar of the last CalendarDays ending today.
func (v *ProfileView) Calendar(today time.Time) []models.CalendarDay {
	return v.Stats().Calendar(today, CalendarDays)
}

func (v *ProfileView) Close() {
	v.Profile.Close()
	v.Activities.Close()
	v.Progress.Close()
}
