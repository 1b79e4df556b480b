package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weekplan/internal/config"
	"weekplan/internal/domain"
	"weekplan/internal/repository/sqlite"
	"weekplan/internal/store"
)

// monday08 is Monday 6 January 2025, 08:00 UTC, in ISO week 2.
var monday08 = time.Date(2025, time.January, 6, 8, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

type testEnv struct {
	repo     sqlite.Repository
	store    *store.Store
	cfg      *config.Config
	services *ServiceContainer
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()
	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	s := store.New(repo)
	require.NoError(t, s.Load(context.Background()))

	cfg := config.NewConfig()
	return &testEnv{
		repo:     repo,
		store:    s,
		cfg:      cfg,
		services: NewServiceContainer(s, cfg, fixedClock(now)),
	}
}

// reload reads persisted state into a fresh store.
func (e *testEnv) reload(t *testing.T) *store.Store {
	t.Helper()
	fresh := store.New(e.repo)
	require.NoError(t, fresh.Load(context.Background()))
	return fresh
}

func (e *testEnv) setSchedule(t *testing.T, schedule domain.Schedule) {
	t.Helper()
	require.NoError(t, e.store.SaveSchedule(context.Background(), schedule))
}

func activities(items []domain.ScheduleItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Activity
	}
	return out
}
