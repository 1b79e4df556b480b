package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/domain"
)

func TestReminderService_Upcoming(t *testing.T) {
	now := time.Date(2025, time.January, 6, 8, 55, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	env.setSchedule(t, domain.Schedule{
		domain.Monday: {
			{ID: "past", Time: "9:00-10:00", Category: domain.CategoryGym, Activity: "Lift"},
			{ID: "soon", Time: "10:00-11:00", Category: domain.CategoryDeepWork, Activity: "Write"},
			{ID: "vague", Time: "Afternoon", Category: domain.CategoryPersonal, Activity: "Read"},
		},
		domain.Tuesday: {
			{ID: "tue", Time: "9:00-10:00", Category: domain.CategorySchool, Activity: "Class"},
		},
	})

	reminders := env.services.ReminderService.Upcoming()
	require.Len(t, reminders, 2)

	assert.Equal(t, "soon", reminders[0].ItemID)
	assert.Equal(t, time.Date(2025, time.January, 6, 9, 50, 0, 0, time.UTC), reminders[0].At)
	assert.Equal(t, "Upcoming: Write", reminders[0].Title)
	assert.Equal(t, "Starting at 10:00-11:00 (deepwork)", reminders[0].Body)

	assert.Equal(t, "tue", reminders[1].ItemID)
	assert.Equal(t, domain.Tuesday, reminders[1].Day)
	assert.True(t, reminders[1].StartsAt.Equal(time.Date(2025, time.January, 7, 9, 0, 0, 0, time.UTC)))
}

func TestReminderService_UsesConfiguredZoneAndLead(t *testing.T) {
	now := time.Date(2025, time.January, 6, 7, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)
	env.cfg.Time.Timezone = "Europe/Brussels"
	env.cfg.Reminders.LeadTime = 30 * time.Minute
	env.cfg.Reminders.HorizonDays = 1
	env.setSchedule(t, domain.Schedule{
		domain.Monday:  {{ID: "a", Time: "9:00-10:00", Category: domain.CategoryGym, Activity: "Lift"}},
		domain.Tuesday: {{ID: "b", Time: "9:00-10:00", Category: domain.CategoryGym, Activity: "Lift"}},
	})

	reminders := env.services.ReminderService.Upcoming()
	require.Len(t, reminders, 1)
	assert.True(t, reminders[0].At.Equal(time.Date(2025, time.January, 6, 7, 30, 0, 0, time.UTC)))
}
