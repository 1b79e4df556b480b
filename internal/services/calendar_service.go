package services

import (
	"time"

	"weekplan/internal/calendar"
	"weekplan/internal/config"
)

type calendarServiceImpl struct {
	cfg *config.Config
	now Clock
}

func NewCalendarService(cfg *config.Config, now Clock) CalendarService {
	return &calendarServiceImpl{cfg: cfg, now: now}
}

func (c *calendarServiceImpl) CurrentWeek() WeekInfo {
	return c.WeekOf(c.now().In(c.cfg.Location()))
}

// Week clamps week to [1,53] and resolves its Monday.
func (c *calendarServiceImpl) Week(week, year int) WeekInfo {
	week = calendar.ClampWeek(week)
	monday := calendar.StartOfWeek(week, year)
	return WeekInfo{
		Week:   week,
		Year:   year,
		Monday: monday,
		Sunday: calendar.DayOfWeek(monday, 6),
	}
}

// WeekOf uses the calendar date of t in its own location.
func (c *calendarServiceImpl) WeekOf(t time.Time) WeekInfo {
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return c.Week(calendar.ISOWeekNumber(date), calendar.ISOYear(date))
}
