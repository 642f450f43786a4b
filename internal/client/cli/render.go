package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/menta/internal/client/models"
	"github.com/dmitrijs2005/menta/internal/client/views"
)

func activityTypeList() string {
	names := make([]string, len(models.ActivityTypes))
	for i, t := range models.ActivityTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func joinComma(s []string) string { return strings.Join(s, ", ") }

func privacyList() string {
	names := make([]string, len(models.Privacies))
	for i, p := range models.Privacies {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func renderActivities(w io.Writer, items []models.Activity) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No activities yet.")
		return
	}
	for _, it := range items {
		author := it.User.Name
		if author == "" {
			author = it.UserID
		}
		fmt.Fprintf(w, "[%s] %s (%s) by %s on %s %s\n", it.ID, it.Title, it.Type, author, it.Date, it.Time)
		if it.Description != "" {
			fmt.Fprintf(w, "    %s\n", strings.ReplaceAll(it.Description, "\n", "\n    "))
		}
		fmt.Fprintf(w, "    likes: %d  comments: %d  streak: %d\n", it.Likes, len(it.Comments), it.Streak)
		for _, c := range it.Comments {
			fmt.Fprintf(w, "      - %s: %s\n", c.Author, c.Text)
		}
	}
}

func renderProfile(w io.Writer, u models.UserProfile, followers int, following bool, self bool) {
	fmt.Fprintf(w, "%s (id %s)\n", u.FullName(), u.ID)
	if u.Location != "" {
		fmt.Fprintln(w, "location:", u.Location)
	}
	if u.Bio != "" {
		fmt.Fprintln(w, "bio:", u.Bio)
	}
	if len(u.Interests) > 0 {
		fmt.Fprintln(w, "interests:", strings.Join(u.Interests, ", "))
	}
	fmt.Fprintf(w, "followers: %d  following: %d\n", followers, u.FollowingCount())
	if !self {
		if following {
			fmt.Fprintln(w, "You follow this user.")
		} else {
			fmt.Fprintln(w, "You do not follow this user.")
		}
	}
}

func renderProgress(w io.Writer, c models.Category, p models.Progress, days []models.CalendarDay) {
	fmt.Fprintf(w, "%s progress: %d entries\n", c, p.Total())

	durations := p.Durations()
	for _, name := range p.Activities() {
		fmt.Fprintf(w, "  %-20s %6.0f min\n", name, durations[name])
	}

	var b strings.Builder
	for i, d := range days {
		if i > 0 && i%7 == 0 {
			b.WriteByte('\n')
		}
		switch {
		case d.Count == 0:
			b.WriteString(" .")
		case d.Count < 10:
			fmt.Fprintf(&b, " %d", d.Count)
		default:
			b.WriteString(" +")
		}
	}
	if len(days) > 0 {
		fmt.Fprintf(w, "Last %d days (%s to %s):\n%s\n", len(days), days[0].Date, days[len(days)-1].Date, b.String())
	}
}

func renderSpots(w io.Writer, spots []models.StudySpot) {
	if len(spots) == 0 {
		fmt.Fprintln(w, "No study spots found.")
		return
	}
	sorted := slices.Clone(spots)
	slices.SortFunc(sorted, func(a, b models.StudySpot) int { return strings.Compare(a.Name(), b.Name()) })
	for _, s := range sorted {
		fmt.Fprintf(w, "%-30s %9.4f %9.4f", s.Name(), s.Lat, s.Lon)
		if amenity := s.Tags["amenity"]; amenity != "" {
			fmt.Fprintf(w, "  (%s)", amenity)
		}
		fmt.Fprintln(w)
	}
}

func renderChrome(w io.Writer, c *views.ChromeView) {
	labels := make([]string, 0, len(c.Nav()))
	for _, l := range c.Nav() {
		labels = append(labels, l.Label)
	}
	fmt.Fprintf(w, "%s | %s\n", c.Brand(), strings.Join(labels, " | "))
}

func renderFooter(w io.Writer, c *views.ChromeView) {
	for _, col := range c.Footer() {
		fmt.Fprintf(w, "%s: %s\n", col.Title, strings.Join(col.Entries, ", "))
	}
	fmt.Fprintln(w, c.Copyright())
}

func today(now func() time.Time) string {
	return now().Format(time.DateOnly)
}
