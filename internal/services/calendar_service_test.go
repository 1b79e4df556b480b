package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarService(t *testing.T) {
	env := newTestEnv(t, monday08)
	svc := env.services.CalendarService

	current := svc.CurrentWeek()
	assert.Equal(t, 2, current.Week)
	assert.Equal(t, 2025, current.Year)
	assert.Equal(t, time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC), current.Monday)
	assert.Equal(t, time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC), current.Sunday)

	tests := []struct {
		name       string
		week, year int
		wantWeek   int
		wantMonday time.Time
	}{
		{"week one of 2025 starts in 2024", 1, 2025, 1, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)},
		{"zero clamps to one", 0, 2025, 1, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)},
		{"above 53 clamps to 53", 60, 2026, 53, time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := svc.Week(tt.week, tt.year)
			assert.Equal(t, tt.wantWeek, info.Week)
			assert.Equal(t, tt.wantMonday, info.Monday)
		})
	}

	t.Run("week of a year-end date", func(t *testing.T) {
		info := svc.WeekOf(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC))
		assert.Equal(t, 1, info.Week)
		assert.Equal(t, 2025, info.Year)
	})
}
