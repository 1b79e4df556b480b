package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
)

func TestBackupService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newTestEnv(t, monday08)

	habit, err := source.services.HabitService.AddHabit(ctx, "Read", "mind")
	require.NoError(t, err)
	_, err = source.services.HabitService.ToggleHabit(ctx, habit.ID, "2025-01-06")
	require.NoError(t, err)
	require.NoError(t, source.services.ScheduleService.DeleteItem(ctx, domain.Sunday, "sun-4"))

	var buf bytes.Buffer
	require.NoError(t, source.services.BackupService.Backup(&buf))

	var decoded Backup
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, BackupVersion, decoded.Version)
	assert.Equal(t, "2025-01-06T08:00:00Z", decoded.Timestamp)

	target := newTestEnv(t, monday08)
	require.NoError(t, target.services.BackupService.Restore(ctx, bytes.NewReader(buf.Bytes())))

	assert.Equal(t, source.store.Schedule(), target.store.Schedule())
	assert.Equal(t, source.store.Templates(), target.store.Templates())
	assert.Equal(t, source.store.Habits(), target.store.Habits())
	assert.Equal(t, source.store.HabitLogs(), target.store.HabitLogs())

	reloaded := target.reload(t)
	assert.Equal(t, source.store.Schedule(), reloaded.Schedule())
	assert.Equal(t, source.store.Habits(), reloaded.Habits())
}

func TestBackupService_RestoreRejectsWithoutMutation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "schedule: yes"},
		{"missing templates", `{"version":1,"schedule":{"monday":[]}}`},
		{"missing schedule", `{"version":1,"templates":[]}`},
		{"null schedule", `{"schedule":null,"templates":[]}`},
		{"unsupported version", `{"version":2,"schedule":{},"templates":[]}`},
		{"unknown day", `{"schedule":{"caturday":[]},"templates":[]}`},
		{"malformed habits", `{"schedule":{},"templates":[],"habits":"lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			env := newTestEnv(t, monday08)
			_, err := env.services.HabitService.AddHabit(ctx, "Stretch", "")
			require.NoError(t, err)
			habitsBefore := env.store.Habits()

			err = env.services.BackupService.Restore(ctx, strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidBackup))
			assert.Equal(t, "Invalid backup file. Nothing was restored.", errors.GetUserMessage(err))

			assert.Equal(t, domain.DefaultSchedule(), env.store.Schedule())
			assert.Equal(t, domain.DefaultTemplates(), env.store.Templates())
			assert.Equal(t, habitsBefore, env.store.Habits())
		})
	}
}

func TestBackupService_RestoreKeepsAbsentOptionalFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday08)
	habit, err := env.services.HabitService.AddHabit(ctx, "Stretch", "")
	require.NoError(t, err)

	input := `{"version":1,"schedule":{"friday":[{"id":"x","time":"Morning","duration":"1h","category":"gym","activity":"Swim","notes":""}]},"templates":[]}`
	require.NoError(t, env.services.BackupService.Restore(ctx, strings.NewReader(input)))

	schedule := env.store.Schedule()
	assert.True(t, schedule.HasAllDays())
	assert.Equal(t, 1, schedule.Count())
	assert.Empty(t, env.store.Templates())
	assert.Equal(t, []domain.Habit{habit}, env.store.Habits())
}
