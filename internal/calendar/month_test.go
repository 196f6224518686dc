package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-planner/internal/models"
)

func TestBuildMonth(t *testing.T) {
	weekly := post(models.FrequencyWeekly, 2024, time.March, 15)
	weekly.ID = "weekly"
	weekly.Title = "Friday tips"
	once := post(models.FrequencyOnce, 2024, time.April, 12)
	once.ID = "once"
	once.Title = "Launch"
	once.Category = "Blog"

	today := models.NewDate(2024, time.April, 12)
	m := BuildMonth([]models.Post{weekly, once}, 2024, time.April, today)

	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, time.April, m.Month)
	assert.Equal(t, "April", m.Name)
	// 1 April 2024 is a Monday.
	assert.Equal(t, 1, m.LeadingBlanks)
	assert.Equal(t, WeekdayLabels, m.Weekdays)
	require.Len(t, m.Days, 30)

	day12 := m.Days[11]
	assert.Equal(t, 12, day12.Number)
	assert.Equal(t, time.Friday, day12.Weekday)
	assert.True(t, day12.IsToday)
	require.Len(t, day12.Entries, 2)
	assert.Equal(t, "weekly", day12.Entries[0].PostID)
	assert.Equal(t, "once", day12.Entries[1].PostID)
	assert.Equal(t, TagColor("BlogLaunch", 1), day12.Entries[1].Color)
	assert.Equal(t, TagColor("BlogLaunch", 0.2), day12.Entries[1].Background)

	day13 := m.Days[12]
	assert.False(t, day13.IsToday)
	assert.NotNil(t, day13.Entries)
	assert.Empty(t, day13.Entries)
}

func TestBuildMonthEmpty(t *testing.T) {
	m := BuildMonth(nil, 2024, time.February, models.Date{})
	assert.Len(t, m.Days, 29)
	// 1 February 2024 is a Thursday.
	assert.Equal(t, 4, m.LeadingBlanks)
	for _, d := range m.Days {
		assert.False(t, d.IsToday)
		assert.Empty(t, d.Entries)
	}
}

func TestTagColor(t *testing.T) {
	assert.Equal(t, "hsla(0, 70%, 40%, 1)", TagColor("", 1))
	assert.Equal(t, "hsla(97, 70%, 40%, 1)", TagColor("a", 1))
	assert.Equal(t, "hsla(225, 70%, 40%, 0.2)", TagColor("ab", 0.2))
	assert.Equal(t, TagColor("Social MediaWeekly recap", 1), TagColor("Social MediaWeekly recap", 1))
}
