package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityType(t *testing.T) {
	got, err := ParseActivityType("  public speaking ")
	require.NoError(t, err)
	assert.Equal(t, ActivityPublicSpeaking, got)

	_, err = ParseActivityType("skydiving")
	require.ErrorIs(t, err, ErrUnknownActivityType)

	assert.Len(t, ActivityTypes, 33)
}

func TestParsePrivacy(t *testing.T) {
	tests := []struct {
		in   string
		want Privacy
	}{
		{"everyone", PrivacyEveryone},
		{"Followers", PrivacyFollowers},
		{"only_you", PrivacyOnlyYou},
		{"Only You", PrivacyOnlyYou},
	}
	for _, tt := range tests {
		got, err := ParsePrivacy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePrivacy("friends")
	require.ErrorIs(t, err, ErrUnknownPrivacy)
}

func TestPrivacy_LabelsAreExhaustive(t *testing.T) {
	for _, p := range Privacies {
		assert.NotEmpty(t, p.Label())
		assert.NotEmpty(t, p.Description())
	}
	assert.Panics(t, func() { _ = Privacy("nobody").Label() })
}

func TestParseClubAndCategory(t *testing.T) {
	c, err := ParseClub("coding")
	require.NoError(t, err)
	assert.Equal(t, ClubCoding, c)
	_, err = ParseClub("Chess")
	require.ErrorIs(t, err, ErrUnknownClub)

	cat, err := ParseCategory("reading")
	require.NoError(t, err)
	assert.Equal(t, CategoryReading, cat)
	_, err = ParseCategory("Cooking")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategory_Matches(t *testing.T) {
	assert.True(t, CategoryActivities.Matches("anything"))
	assert.True(t, CategoryReading.Matches("reading"))
	assert.False(t, CategoryReading.Matches("Writing"))
	assert.Panics(t, func() { Category("bogus").Matches("x") })
}
