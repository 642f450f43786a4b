package models

import (
	"sort"
	"time"
)

// ProgressEntry is a per-activity aggregate served by GET /progress/{id}.
type ProgressEntry struct {
	Activity       string    `json:"activity"`
	Streak         int       `json:"streak"`
	TotalTimeSpent float64   `json:"total_time_spent"`
	LastCompleted  time.Time `json:"last_completed"`
}

// CalendarDay counts completed activities on one UTC date (YYYY-MM-DD).
type CalendarDay struct {
	Date  string
	Count int
}

// Progress is the aggregated view of a user's progress entries.
type Progress struct {
	Entries []ProgressEntry
}

// Total is the number of progress entries.
func (p Progress) Total() int { return len(p.Entries) }

// Durations sums time spent (minutes) per activity.
func (p Progress) Durations() map[string]float64 {
	out := make(map[string]float64)
	for _, e := range p.Entries {
		out[e.Activity] += e.TotalTimeSpent
	}
	return out
}

// Activities returns the activity names that have durations, sorted.
func (p Progress) Activities() []string {
	d := p.Durations()
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calendar returns the last `days` dates ending at today, oldest first,
// each with the number of entries last completed on that date.
func (p Progress) Calendar(today time.Time, days int) []CalendarDay {
	counts := make(map[string]int)
	for _, e := range p.Entries {
		counts[e.LastCompleted.UTC().Format(time.DateOnly)]++
	}

	out := make([]CalendarDay, days)
	for i := 0; i < days; i++ {
		date := today.UTC().AddDate(0, 0, -i).Format(time.DateOnly)
		out[days-1-i] = CalendarDay{Date: date, Count: counts[date]}
	}
	return out
}

// Filter keeps the entries matching the category.
func (p Progress) Filter(c Category) Progress {
	var out []ProgressEntry
	for _, e := range p.Entries {
		if c.Matches(e.Activity) {
			out = append(out, e)
		}
	}
	return Progress{Entries: out}
}
