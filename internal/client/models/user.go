// Package models defines the client-side read and write models exchanged
// with the menta API.
package models

import (
	"encoding/json"
	"slices"
	"strings"
)

// UserProfile is the server-owned profile snapshot. It is replaced
// wholesale on every fetch.
type UserProfile struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	DOB            string    `json:"dob,omitempty"`
	Followers      []string  `json:"followers"`
	Following      []string  `json:"following"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CoverPhoto     string    `json:"cover_photo,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Interests      Interests `json:"interests"`
	Location       string    `json:"location,omitempty"`
}

// FullName joins first and last name.
func (u UserProfile) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u UserProfile) FollowerCount() int  { return len(u.Followers) }
func (u UserProfile) FollowingCount() int { return len(u.Following) }

// IsFollowing reports whether u follows the user with the given id.
func (u UserProfile) IsFollowing(id string) bool {
	return slices.Contains(u.Following, id)
}

// Interests is a list of interest tags. The API has served it both as a
// JSON array and as a comma-separated string, so both decode.
type Interests []string

func (i *Interests) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*i = list
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*i = ParseInterests(s)
	return nil
}

// String renders the tags comma-separated, the form the API accepts on writes.
func (i Interests) String() string {
	return strings.Join(i, ",")
}

// ParseInterests splits a comma-separated list, trimming blanks.
func ParseInterests(s string) Interests {
	out := Interests{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Credential is an email/password pair. It only lives for the duration of
// a login submission.
type Credential struct {
	Email    string
	Password []byte
}

// Token is the response of the token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Registration is the sign-up form.
type Registration struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	DOB             string
	Interests       Interests
}

// RegisterRequest is the wire body of POST /register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	DOB       string `json:"dob"`
	Interests string `json:"interests"`
}

// Request converts the form into its wire body.
func (r Registration) Request() RegisterRequest {
	return RegisterRequest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		DOB:       r.DOB,
		Interests: r.Interests.String(),
	}
}

// Upload is a file picked for upload.
type Upload struct {
	Name string
	Data []byte
}

// ProfileUpdate carries the fields a user changed in settings. Nil fields
// are filled from the current profile before the update is sent.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	DOB       *string
	Interests Interests
	Location  *string
	Bio       *string

	ProfilePicture *Upload
	CoverPhoto     *Upload
}

// Fields merges u over current and returns the complete form field set
// expected by PUT /users/{id}. Image fields hold reference paths, which the
// caller sets after uploading.
func (u ProfileUpdate) Fields(current UserProfile) map[string]string {
	pick := func(v *string, fallback string) string {
		if v != nil {
			return *v
		}
		return fallback
	}

	interests := current.Interests
	if u.Interests != nil {
		interests = u.Interests
	}

	return map[string]string{
		"first_name":      pick(u.FirstName, current.FirstName),
		"last_name":       pick(u.LastName, current.LastName),
		"email":           pick(u.Email, current.Email),
		"dob":             pick(u.DOB, current.DOB),
		"interests":       interests.String(),
		"location":        pick(u.Location, current.Location),
		"bio":             pick(u.Bio, current.Bio),
		"profile_picture": current.ProfilePicture,
		"cover_photo":     current.CoverPhoto,
	}
}
