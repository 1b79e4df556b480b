// Package calendar holds the pure date arithmetic used to anchor the weekly plan to
// absolute dates. All dates are bucketed in UTC.
package calendar

import (
	"fmt"
	"time"
)

// DateKeyLayout is the layout of the YYYY-MM-DD keys used by the completion and habit logs.
const DateKeyLayout = "2006-01-02"

const (
	MinWeek = 1
	MaxWeek = 53
)

// Midnight truncates t to 00:00 UTC of its UTC calendar date.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// thursdayOf returns the Thursday of the Monday-start week containing date.
func thursdayOf(date time.Time) time.Time {
	d := Midnight(date)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDate(0, 0, 4-weekday)
}

// ISOWeekNumber returns the ISO-8601 week number (1-53) of date.
// The date is shifted to the Thursday of its week and the week is counted within
// that Thursday's year.
func ISOWeekNumber(date time.Time) int {
	thursday := thursdayOf(date)
	// ceil(dayOfYear / 7) with a 1-based day of year
	return (thursday.YearDay() + 6) / 7
}

// ISOYear returns the year that owns the ISO week containing date.
func ISOYear(date time.Time) int {
	return thursdayOf(date).Year()
}

// StartOfWeek returns the Monday that begins ISO week weekNumber of year.
// It locates Jan 1 + (week-1)*7 days and rolls back to that week's Monday when the
// day falls on Monday..Thursday, or forward to the next Monday otherwise.
func StartOfWeek(weekNumber, year int) time.Time {
	simple := time.Date(year, time.January, 1+(weekNumber-1)*7, 0, 0, 0, 0, time.UTC)
	dow := int(simple.Weekday())
	if dow <= int(time.Thursday) {
		return simple.AddDate(0, 0, 1-dow)
	}
	return simple.AddDate(0, 0, 8-dow)
}

// WeeksInYear returns the number of ISO weeks (52 or 53) in year.
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// ClampWeek bounds a week number to [MinWeek, MaxWeek].
func ClampWeek(week int) int {
	if week < MinWeek {
		return MinWeek
	}
	if week > MaxWeek {
		return MaxWeek
	}
	return week
}

// DayOfWeek returns the date dayIndex days after weekStart (0 = Monday).
func DayOfWeek(weekStart time.Time, dayIndex int) time.Time {
	return weekStart.AddDate(0, 0, dayIndex)
}

// DateKey formats the UTC calendar date of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into midnight UTC.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", key, err)
	}
	return t, nil
}

// IsDateKey reports whether key is a valid YYYY-MM-DD date.
func IsDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// PreviousDateKey returns the key of the day before key.
func PreviousDateKey(key string) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return DateKey(t.AddDate(0, 0, -1)), nil
}
