package services

import (
	"fmt"
	"time"

	"content-planner/internal/apperrors"
	"content-planner/internal/calendar"
	"content-planner/internal/models"
)

type MonthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

type MonthView struct {
	calendar.Month
	Prev MonthRef `json:"prev"`
	Next MonthRef `json:"next"`
}

type CalendarService struct {
	posts *PostService
	now   func() time.Time
}

func NewCalendarService(posts *PostService) *CalendarService {
	return &CalendarService{posts: posts, now: time.Now}
}

// Today returns the local wall-clock date.
func (s *CalendarService) Today() models.Date {
	return models.DateOf(s.now())
}

func (s *CalendarService) Month(year int, month time.Month) (MonthView, error) {
	if err := checkMonth(year, month); err != nil {
		return MonthView{}, err
	}
	py, pm := calendar.Shift(year, month, -1)
	ny, nm := calendar.Shift(year, month, 1)
	return MonthView{
		Month: calendar.BuildMonth(s.posts.List(), year, month, s.Today()),
		Prev:  MonthRef{Year: py, Month: pm},
		Next:  MonthRef{Year: ny, Month: nm},
	}, nil
}

func (s *CalendarService) CurrentMonth() (MonthView, error) {
	today := s.Today()
	return s.Month(today.Year, today.Month)
}

// PostDays lists the days of year/month on which post id is displayed.
func (s *CalendarService) PostDays(id string, year int, month time.Month) ([]int, error) {
	if err := checkMonth(year, month); err != nil {
		return nil, err
	}
	p, ok := s.posts.Get(id)
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	return calendar.DaysInMonthFor(p, year, month), nil
}

func checkMonth(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return apperrors.Invalid("month", "month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return apperrors.Invalid("year", fmt.Sprintf("year %d is out of range", year))
	}
	return nil
}
