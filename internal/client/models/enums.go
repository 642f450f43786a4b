package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrUnknownPrivacy      = errors.New("unknown privacy option")
	ErrUnknownClub         = errors.New("unknown club")
	ErrUnknownCategory     = errors.New("unknown category")
)

// ActivityType classifies an activity. The set is closed; parsing anything
// else fails.
type ActivityType string

const (
	ActivityReading                ActivityType = "Reading"
	ActivityWriting                ActivityType = "Writing"
	ActivityChess                  ActivityType = "Chess"
	ActivityCoding                 ActivityType = "Coding"
	ActivityMathematics            ActivityType = "Mathematics"
	ActivityScience                ActivityType = "Science"
	ActivityHistory                ActivityType = "History"
	ActivityPhilosophy             ActivityType = "Philosophy"
	ActivityDebating               ActivityType = "Debating"
	ActivityPublicSpeaking         ActivityType = "Public Speaking"
	ActivityCriticalThinking       ActivityType = "Critical Thinking"
	ActivityPuzzles                ActivityType = "Puzzles"
	ActivityBoardGames             ActivityType = "Board Games"
	ActivityMusic                  ActivityType = "Music"
	ActivityArt                    ActivityType = "Art"
	ActivityPhotography            ActivityType = "Photography"
	ActivityCreativeWriting        ActivityType = "Creative Writing"
	ActivityProgramming            ActivityType = "Programming"
	ActivityRobotics               ActivityType = "Robotics"
	ActivityAstronomy              ActivityType = "Astronomy"
	ActivityPhysics                ActivityType = "Physics"
	ActivityChemistry              ActivityType = "Chemistry"
	ActivityBiology                ActivityType = "Biology"
	ActivityEngineering            ActivityType = "Engineering"
	ActivityEconomics              ActivityType = "Economics"
	ActivityPsychology             ActivityType = "Psychology"
	ActivitySociology              ActivityType = "Sociology"
	ActivityPoliticalScience       ActivityType = "Political Science"
	ActivityLinguistics            ActivityType = "Linguistics"
	ActivityComputerScience        ActivityType = "Computer Science"
	ActivityArtificialIntelligence ActivityType = "Artificial Intelligence"
	ActivityMachineLearning        ActivityType = "Machine Learning"
	ActivityDataScience            ActivityType = "Data Science"
)

// ActivityTypes lists every activity type in display order.
var ActivityTypes = []ActivityType{
	ActivityReading, ActivityWriting, ActivityChess, ActivityCoding, ActivityMathematics,
	ActivityScience, ActivityHistory, ActivityPhilosophy, ActivityDebating, ActivityPublicSpeaking,
	ActivityCriticalThinking, ActivityPuzzles, ActivityBoardGames, ActivityMusic, ActivityArt,
	ActivityPhotography, ActivityCreativeWriting, ActivityProgramming, ActivityRobotics,
	ActivityAstronomy, ActivityPhysics, ActivityChemistry, ActivityBiology, ActivityEngineering,
	ActivityEconomics, ActivityPsychology, ActivitySociology, ActivityPoliticalScience,
	ActivityLinguistics, ActivityComputerScience, ActivityArtificialIntelligence,
	ActivityMachineLearning, ActivityDataScience,
}

// ParseActivityType matches s case-insensitively against ActivityTypes.
func ParseActivityType(s string) (ActivityType, error) {
	for _, t := range ActivityTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownActivityType, s)
}

// Privacy controls who can see an activity.
type Privacy string

const (
	PrivacyEveryone  Privacy = "everyone"
	PrivacyFollowers Privacy = "followers"
	PrivacyOnlyYou   Privacy = "only_you"
)

// Privacies lists the privacy options in display order.
var Privacies = []Privacy{PrivacyEveryone, PrivacyFollowers, PrivacyOnlyYou}

func ParsePrivacy(s string) (Privacy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Privacies {
		if s == string(p) || s == strings.ToLower(p.Label()) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPrivacy, s)
}

func (p Privacy) Label() string {
	switch p {
	case PrivacyEveryone:
		return "Everyone"
	case PrivacyFollowers:
		return "Followers"
	case PrivacyOnlyYou:
		return "Only You"
	}
	panic(fmt.Sprintf("unhandled privacy %q", string(p)))
}

func (p Privacy) Description() string {
	switch p {
	case PrivacyEveryone:
		return "Anyone on Menta can see this activity."
	case PrivacyFollowers:
		return "Only your followers will be able to view and access this activity's details. This activity will still count toward your goals and progress."
	case PrivacyOnlyYou:
		return "This activity is private and only visible to you and on My Feed. This activity will still count toward your goals and progress."
	}
	panic(fmt.Sprintf("unhandled privacy %q", string(p)))
}

// Club is a study club category.
type Club string

const (
	ClubReading Club = "Reading"
	ClubWriting Club = "Writing"
	ClubPuzzles Club = "Puzzles"
	ClubCoding  Club = "Coding"
)

var Clubs = []Club{ClubReading, ClubWriting, ClubPuzzles, ClubCoding}

func ParseClub(s string) (Club, error) {
	for _, c := range Clubs {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClub, s)
}

// Category selects the progress tracker shown on a profile.
type Category string

const (
	CategoryActivities Category = "Activities"
	CategoryReading    Category = "Reading"
	CategoryWriting    Category = "Writing"
	CategoryCoding     Category = "Coding"
	CategoryPuzzles    Category = "Puzzles"
)

var Categories = []Category{CategoryActivities, CategoryReading, CategoryWriting, CategoryCoding, CategoryPuzzles}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Matches reports whether an activity name belongs to the category.
// CategoryActivities matches everything.
func (c Category) Matches(activity string) bool {
	switch c {
	case CategoryActivities:
		return true
	case CategoryReading, CategoryWriting, CategoryCoding, CategoryPuzzles:
		return strings.EqualFold(string(c), activity)
	}
	panic(fmt.Sprintf("unhandled category %q", string(c)))
}
