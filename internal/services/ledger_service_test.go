package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
)

func TestLedgerService_ToggleCompletion(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		stats     domain.UserStats
		completed []string
		wantDone  bool
		wantStats domain.UserStats
		wantLevel bool
		wantDelta int
	}{
		{
			name:      "first completion starts a streak",
			stats:     domain.NewUserStats(),
			wantDone:  true,
			wantDelta: 10,
			wantStats: domain.UserStats{XP: 10, Level: 1, Streak: 1, LastActiveDate: "2025-01-06"},
		},
		{
			name:      "undo removes XP and keeps the same-day streak",
			stats:     domain.UserStats{XP: 30, Level: 1, Streak: 2, LastActiveDate: "2025-01-06"},
			completed: []string{"mon-1"},
			wantDone:  false,
			wantDelta: -10,
			wantStats: domain.UserStats{XP: 20, Level: 1, Streak: 2, LastActiveDate: "2025-01-06"},
		},
		{
			name:      "undo never goes below zero XP",
			stats:     domain.UserStats{XP: 5, Level: 1, Streak: 1, LastActiveDate: "2025-01-06"},
			completed: []string{"mon-1"},
			wantDone:  false,
			wantDelta: -10,
			wantStats: domain.UserStats{XP: 0, Level: 1, Streak: 1, LastActiveDate: "2025-01-06"},
		},
		{
			name:      "reaching the threshold levels up",
			stats:     domain.UserStats{XP: 95, Level: 1, Streak: 1, LastActiveDate: "2025-01-06"},
			wantDone:  true,
			wantDelta: 10,
			wantLevel: true,
			wantStats: domain.UserStats{XP: 105, Level: 2, Streak: 1, LastActiveDate: "2025-01-06"},
		},
		{
			name:      "activity yesterday extends the streak",
			stats:     domain.UserStats{XP: 0, Level: 1, Streak: 3, LastActiveDate: "2025-01-05"},
			wantDone:  true,
			wantDelta: 10,
			wantStats: domain.UserStats{XP: 10, Level: 1, Streak: 4, LastActiveDate: "2025-01-06"},
		},
		{
			name:      "a gap resets the streak",
			stats:     domain.UserStats{XP: 0, Level: 1, Streak: 9, LastActiveDate: "2025-01-01"},
			wantDone:  true,
			wantDelta: 10,
			wantStats: domain.UserStats{XP: 10, Level: 1, Streak: 1, LastActiveDate: "2025-01-06"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, monday08)
			require.NoError(t, env.store.SaveUserStats(ctx, tt.stats))
			if tt.completed != nil {
				require.NoError(t, env.store.SaveCompletionLog(ctx, domain.DateLog{"2025-01-06": tt.completed}))
			}

			result, err := env.services.LedgerService.ToggleCompletion(ctx, "mon-1", "2025-01-06")
			require.NoError(t, err)
			assert.Equal(t, tt.wantDone, result.Completed)
			assert.Equal(t, tt.wantDelta, result.XPDelta)
			assert.Equal(t, tt.wantLevel, result.LeveledUp)
			assert.Equal(t, tt.wantStats, result.Stats)
			assert.Equal(t, tt.wantStats, env.reload(t).UserStats())
		})
	}
}

func TestLedgerService_StreakUsesClockNotCompletionDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday08)

	result, err := env.services.LedgerService.ToggleCompletion(ctx, "sun-1", "2024-12-29")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", result.Stats.LastActiveDate)
	assert.Equal(t, []string{"sun-1"}, env.services.LedgerService.CompletedOn("2024-12-29"))
	assert.Empty(t, env.services.LedgerService.CompletedOn("2025-01-06"))
}

func TestLedgerService_Errors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday08)

	_, err := env.services.LedgerService.ToggleCompletion(ctx, "mon-1", "06/01/2025")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	_, err = env.services.LedgerService.ToggleCompletion(ctx, "nope", "2025-01-06")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	assert.Equal(t, domain.NewUserStats(), env.services.LedgerService.Stats())
}

func TestLedgerService_UndoAfterItemDeleted(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday08)

	_, err := env.services.LedgerService.ToggleCompletion(ctx, "mon-2", "2025-01-06")
	require.NoError(t, err)
	require.NoError(t, env.services.ScheduleService.DeleteItem(ctx, domain.Monday, "mon-2"))

	result, err := env.services.LedgerService.ToggleCompletion(ctx, "mon-2", "2025-01-06")
	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.Equal(t, 0, result.Stats.XP)
}
