package models

import "time"

// ActivityAuthor is the author summary embedded in feed items.
type ActivityAuthor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

// Activity is a feed item.
type Activity struct {
	ID                   string         `json:"id"`
	UserID               string         `json:"user_id"`
	User                 ActivityAuthor `json:"user"`
	Type                 ActivityType   `json:"type"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Date                 string         `json:"date"`
	Time                 string         `json:"time"`
	Location             string         `json:"location"`
	Streak               int            `json:"streak"`
	Images               []string       `json:"images"`
	Likes                int            `json:"likes"`
	Comments             []Comment      `json:"comments"`
	Privacy              Privacy        `json:"privacy,omitempty"`
	PerceivedPerformance int            `json:"perceived_performance,omitempty"`
}

// Comment belongs to an activity.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewActivity is the body of POST /activities.
type NewActivity struct {
	Type                 ActivityType `json:"type"`
	Title                string       `json:"title"`
	Description          string       `json:"description"`
	Date                 string       `json:"date"`
	Time                 string       `json:"time"`
	Privacy              Privacy      `json:"privacy"`
	PerceivedPerformance int          `json:"perceived_performance"`
	PrivateNotes         string       `json:"private_notes,omitempty"`
	Images               []string     `json:"images"`
}

// NewComment is the body of POST /activities/{id}/comments.
type NewComment struct {
	Text string `json:"text"`
}
