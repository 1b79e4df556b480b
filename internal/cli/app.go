package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"weekplan/internal/api"
	"weekplan/internal/calendar"
	"weekplan/internal/config"
	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/timerange"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries what every command handler needs.
type App struct {
	businessAPI api.BusinessAPI
	config      *config.Config
	out         io.Writer
	errors      *ErrorHandler
}

// NewAppWithConfig creates an App writing to stdout.
func NewAppWithConfig(businessAPI api.BusinessAPI, cfg *config.Config) *App {
	return &App{
		businessAPI: businessAPI,
		config:      cfg,
		out:         os.Stdout,
		errors:      NewErrorHandler(),
	}
}

// WithOutput redirects command output, mainly for tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// parseDay accepts full or abbreviated weekday names in any case.
func parseDay(arg string) (domain.Day, error) {
	day, ok := domain.ParseDay(arg)
	if !ok {
		return "", errors.NewInvalidInputError("day", arg, "expected a weekday such as monday or mon")
	}
	return day, nil
}

// weekdayOf returns the plan day for a YYYY-MM-DD date key.
func weekdayOf(dateKey string) domain.Day {
	t, err := calendar.ParseDateKey(dateKey)
	if err != nil {
		return domain.Monday
	}
	return domain.Days[(int(t.Weekday())+6)%7]
}

// describeTime renders the time column with its length when it is a strict range.
func describeTime(item domain.ScheduleItem) string {
	if r, ok := timerange.Parse(item.Time); ok {
		return fmt.Sprintf("%-11s %6s", item.Time, timerange.FormatDuration(r.Minutes()))
	}
	if item.Duration != "" {
		return fmt.Sprintf("%-11s %6s", item.Time, item.Duration)
	}
	return fmt.Sprintf("%-11s %6s", item.Time, "")
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
