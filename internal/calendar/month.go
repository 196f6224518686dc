package calendar

import (
	"time"

	"content-planner/internal/models"
)

// WeekdayLabels is the grid header, Sunday first.
var WeekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type Entry struct {
	PostID     string `json:"postId"`
	Title      string `json:"title"`
	Color      string `json:"color"`
	Background string `json:"background"`
}

type Day struct {
	Number  int          `json:"day"`
	Weekday time.Weekday `json:"weekday"`
	IsToday bool         `json:"isToday"`
	Entries []Entry      `json:"entries"`
}

// Month is one month grid ready for display.
type Month struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	Name          string     `json:"name"`
	LeadingBlanks int        `json:"leadingBlanks"`
	Weekdays      []string   `json:"weekdays"`
	Days          []Day      `json:"days"`
}

// BuildMonth evaluates every post against every day of year/month. Entries
// keep collection order.
func BuildMonth(posts []models.Post, year int, month time.Month, today models.Date) Month {
	n := DaysIn(year, month)
	first := models.NewDate(year, month, 1)

	m := Month{
		Year:          year,
		Month:         month,
		Name:          month.String(),
		LeadingBlanks: int(first.Weekday()),
		Weekdays:      WeekdayLabels,
		Days:          make([]Day, 0, n),
	}

	for d := 1; d <= n; d++ {
		day := Day{
			Number:  d,
			Weekday: models.NewDate(year, month, d).Weekday(),
			IsToday: today == models.NewDate(year, month, d),
			Entries: []Entry{},
		}
		for _, p := range posts {
			if !OccursOn(p, year, month, d) {
				continue
			}
			key := p.Category + p.Title
			day.Entries = append(day.Entries, Entry{
				PostID:     p.ID,
				Title:      p.Title,
				Color:      TagColor(key, 1),
				Background: TagColor(key, 0.2),
			})
		}
		m.Days = append(m.Days, day)
	}
	return m
}
