// Package calendar projects posts onto calendar months.
//
// A post is anchored on its start date and repeats according to its
// frequency. Recurring posts are shown on every matching day of their start
// month, including days before the start day itself.
package calendar

import (
	"time"

	"content-planner/internal/models"
)

// OccursOn reports whether p is displayed on the given calendar day.
func OccursOn(p models.Post, year int, month time.Month, day int) bool {
	start := p.StartDate

	if p.Frequency == models.FrequencyOnce {
		return year == start.Year && month == start.Month && day == start.Day
	}

	if before(year, month, start.Year, start.Month) {
		return false
	}

	switch p.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		return models.NewDate(year, month, day).Weekday() == start.Weekday()
	case models.FrequencyMonthly:
		return day == start.Day
	}
	return false
}

// DaysInMonthFor lists, in ascending order, the days of year/month on which p
// is displayed.
func DaysInMonthFor(p models.Post, year int, month time.Month) []int {
	n := DaysIn(year, month)
	days := make([]int, 0, n)
	for d := 1; d <= n; d++ {
		if OccursOn(p, year, month, d) {
			days = append(days, d)
		}
	}
	return days
}

// DaysIn returns the number of days in year/month of the Gregorian calendar.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month normalises to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Shift moves year/month by delta months, carrying across year boundaries.
func Shift(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

func before(year int, month time.Month, refYear int, refMonth time.Month) bool {
	return year < refYear || (year == refYear && month < refMonth)
}
