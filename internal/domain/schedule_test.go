package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/timerange"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input    string
		expected Day
		ok       bool
	}{
		{"monday", Monday, true},
		{"Wednesday", Wednesday, true},
		{" sun ", Sunday, true},
		{"THU", Thursday, true},
		{"funday", "", false},
		{"m", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			day, ok := ParseDay(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func TestDay_IndexAndTitle(t *testing.T) {
	assert.Equal(t, 0, Monday.Index())
	assert.Equal(t, 6, Sunday.Index())
	assert.Equal(t, -1, Day("someday").Index())
	assert.Equal(t, "Friday", Friday.Title())
}

func TestRecurrence(t *testing.T) {
	assert.True(t, Recurrence("").IsValid())
	assert.True(t, RecurrenceMonthly.IsValid())
	assert.False(t, Recurrence("yearly").IsValid())
	assert.False(t, RecurrenceNone.Repeats())
	assert.False(t, Recurrence("").Repeats())
	assert.True(t, RecurrenceWeekly.Repeats())
}

func TestScheduleItem_Normalize(t *testing.T) {
	item := ScheduleItem{Activity: "Run", Recurrence: RecurrenceNone, RecurrenceEndDate: "2025-12-31"}
	assert.Empty(t, item.Normalize().RecurrenceEndDate)

	item.Recurrence = RecurrenceDaily
	assert.Equal(t, "2025-12-31", item.Normalize().RecurrenceEndDate)
}

func TestSchedule_CloneIsIndependent(t *testing.T) {
	original := DefaultSchedule()
	clone := original.Clone()
	clone[Monday][0].Activity = "Changed"
	clone[Tuesday] = append(clone[Tuesday], ScheduleItem{ID: "extra"})

	assert.Equal(t, "Morning Anchor", original[Monday][0].Activity)
	assert.Len(t, original[Tuesday], 7)
}

func TestSchedule_Find(t *testing.T) {
	s := DefaultSchedule()

	item, idx, ok := s.Find(Wednesday, "wed-3")
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "Transition", item.Activity)

	day, item, ok := s.FindAnyDay("sat-2")
	require.True(t, ok)
	assert.Equal(t, Saturday, day)
	assert.Equal(t, "Midday", item.Time)

	_, _, ok = s.Find(Monday, "sat-2")
	assert.False(t, ok)
}

func TestSchedule_ItemsNeverNil(t *testing.T) {
	s := Schedule{}
	assert.NotNil(t, s.Items(Monday))
	assert.False(t, s.HasAllDays())
	assert.True(t, NewSchedule().HasAllDays())
}

func TestDefaultSchedule_HasNoOverlaps(t *testing.T) {
	s := DefaultSchedule()
	require.True(t, s.HasAllDays())

	for _, day := range Days {
		items := s.Items(day)
		for i := range items {
			assert.True(t, items[i].IsValid(), "%s item %s", day, items[i].ID)
			a, ok := timerange.Parse(items[i].Time)
			if !ok {
				continue
			}
			for j := i + 1; j < len(items); j++ {
				b, ok := timerange.Parse(items[j].Time)
				if ok {
					assert.False(t, timerange.Overlaps(a, b), "%s: %s overlaps %s", day, items[i].ID, items[j].ID)
				}
			}
		}
	}
}

func TestScheduleJSONShape(t *testing.T) {
	s := NewSchedule()
	s[Monday] = []ScheduleItem{{ID: "a", Time: "9:00-10:00", Category: CategoryGym, Activity: "Lift"}}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"monday":[{"id":"a","time":"9:00-10:00"`)
	assert.Contains(t, string(data), `"sunday":[]`)
	assert.NotContains(t, string(data), "recurrenceEndDate")
}
