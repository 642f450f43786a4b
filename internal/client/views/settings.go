package views

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/services"
)

// Section is a page of the settings screen.
type Section int

const (
	SectionProfile Section = iota
	SectionNotifications
	SectionAccount
)

var sectionNames = [...]string{
	SectionProfile:       "profile",
	SectionNotifications: "notifications",
	SectionAccount:       "account",
}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

func ParseSection(name string) (Section, error) {
	for i, n := range sectionNames {
		if n == name {
			return Section(i), nil
		}
	}
	return 0, fmt.Errorf("unknown settings section %q", name)
}

// PushMode is the push notification preference.
type PushMode string

const (
	PushEverything  PushMode = "everything"
	PushSameAsEmail PushMode = "same_as_email"
	PushNone        PushMode = "none"
)

func ParsePushMode(s string) (PushMode, error) {
	switch m := PushMode(s); m {
	case PushEverything, PushSameAsEmail, PushNone:
		return m, nil
	}
	return "", fmt.Errorf("unknown push mode %q", s)
}

// NotificationPrefs are kept on this machine only; the API has no
// endpoint for them.
type NotificationPrefs struct {
	Comments bool     `json:"comments"`
	Likes    bool     `json:"likes"`
	Follows  bool     `json:"follows"`
	Push     PushMode `json:"push"`
}

func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{Comments: true, Likes: true, Follows: true, Push: PushSameAsEmail}
}

// PrefsStore is local key/value storage.
type PrefsStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

const notificationsKey = "notification_prefs"

const MsgProfileUpdated = "Profile updated successfully!"

// SettingsView edits the signed-in user's profile and local preferences.
type SettingsView struct {
	auth     Auth
	profiles services.ProfileService
	prefs    PrefsStore

	section Section
	Message string
}

func NewSettingsView(a Auth, p services.ProfileService, prefs PrefsStore) *SettingsView {
	return &SettingsView{auth: a, profiles: p, prefs: prefs}
}

// Mount makes sure the current profile is known.
func (v *SettingsView) Mount(ctx context.Context) error {
	if err := guard(v.auth); err != nil {
		return err
	}
	if v.auth.User() != nil {
		return nil
	}
	return checked(ctx, v.auth, v.auth.Refresh(ctx))
}

func (v *SettingsView) Section() Section { return v.section }

func (v *SettingsView) Select(s Section) {
	if s >= 0 && int(s) < len(sectionNames) {
		v.section = s
	}
}

// Current is the profile being edited.
func (v *SettingsView) Current() *models.UserProfile { return v.auth.User() }

// SaveProfile sends the update and refreshes the session's profile.
func (v *SettingsView) SaveProfile(ctx context.Context, u models.ProfileUpdate) error {
	v.Message = ""
	if err := guard(v.auth); err != nil {
		return err
	}
	current := v.auth.User()
	if current == nil {
		return ErrNotLoaded
	}

	if err := v.profiles.Update(ctx, *current, u); err != nil {
		v.Message = "Failed to update profile."
		return checked(ctx, v.auth, err)
	}
	v.Message = MsgProfileUpdated
	return checked(ctx, v.auth, v.auth.Refresh(ctx))
}

func (v *SettingsView) Notifications(ctx context.Context) (NotificationPrefs, error) {
	b, err := v.prefs.Get(ctx, notificationsKey)
	if err != nil || b == nil {
		return DefaultNotificationPrefs(), err
	}
	var p NotificationPrefs
	if err := json.Unmarshal(b, &p); err != nil {
		return DefaultNotificationPrefs(), fmt.Errorf("decode notification prefs: %w", err)
	}
	return p, nil
}

func (v *SettingsView) SaveNotifications(ctx context.Context, p NotificationPrefs) error {
	if _, err := ParsePushMode(string(p.Push)); err != nil {
		return err
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return v.prefs.Set(ctx, notificationsKey, b)
}
