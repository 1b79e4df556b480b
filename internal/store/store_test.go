package store

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/logging"
	"weekplan/internal/repository/sqlite"
)

func newTestRepo(t *testing.T) *sqlite.SQLiteRepository {
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

// failingRepo accepts reads but rejects every write.
type failingRepo struct {
	sqlite.Repository
}

func (f *failingRepo) PutDocument(ctx context.Context, key, value string) error {
	return errors.NewDatabaseError("save "+key, stderrors.New("quota exceeded"))
}

func (f *failingRepo) PutDocuments(ctx context.Context, docs map[string]string) error {
	return errors.NewDatabaseError("save documents", stderrors.New("quota exceeded"))
}

func TestLoad_EmptyRepositoryUsesDefaults(t *testing.T) {
	s := New(newTestRepo(t))
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, domain.DefaultSchedule(), s.Schedule())
	assert.Equal(t, domain.DefaultTemplates(), s.Templates())
	assert.Empty(t, s.Habits())
	assert.Equal(t, domain.NewUserStats(), s.UserStats())
	assert.Empty(t, s.CompletionLog())
}

func TestLoad_CorruptDocumentFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.PutDocument(ctx, KeyUserStats, "{not json"))
	require.NoError(t, repo.PutDocument(ctx, KeyHabits, `[{"id":"h1","title":"Read","category":"mind"}]`))

	var warn bytes.Buffer
	restore := logging.SetOutput(&bytes.Buffer{}, &warn)
	defer restore()

	s := New(repo)
	require.NoError(t, s.Load(ctx))

	assert.Equal(t, domain.NewUserStats(), s.UserStats())
	assert.Equal(t, []domain.Habit{{ID: "h1", Title: "Read", Category: "mind"}}, s.Habits())
	assert.Contains(t, warn.String(), "userStats")
}

func TestLoad_PartialScheduleGetsAllDays(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.PutDocument(ctx, KeySchedule, `{"monday":[{"id":"a","time":"9:00-10:00","duration":"1h","category":"gym","activity":"Lift","notes":""}]}`))

	s := New(repo)
	require.NoError(t, s.Load(ctx))

	schedule := s.Schedule()
	assert.True(t, schedule.HasAllDays())
	assert.Len(t, schedule[domain.Monday], 1)
	assert.Empty(t, schedule[domain.Tuesday])
}

func TestSave_RoundTripsThroughRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	s := New(repo)
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.SaveUserStats(ctx, domain.UserStats{XP: 40, Level: 1, Streak: 2, LastActiveDate: "2025-01-02"}))
	require.NoError(t, s.SaveHabitLogs(ctx, domain.DateLog{"2025-01-02": {"h1"}}))
	require.NoError(t, s.SaveJournalLogs(ctx, domain.JournalLog{"2025-01-02": {Date: "2025-01-02", Mood: domain.MoodGood}}))

	reloaded := New(repo)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, 40, reloaded.UserStats().XP)
	assert.Equal(t, []string{"h1"}, reloaded.HabitLogs()["2025-01-02"])
	assert.Equal(t, domain.MoodGood, reloaded.JournalLogs()["2025-01-02"].Mood)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := New(newTestRepo(t))

	schedule := s.Schedule()
	schedule[domain.Monday] = nil
	assert.NotEmpty(t, s.Schedule()[domain.Monday])

	templates := s.Templates()
	templates[0].Activity = "changed"
	assert.NotEqual(t, "changed", s.Templates()[0].Activity)
}

func TestSave_FailureKeepsMemoryAndReturnsDatabaseError(t *testing.T) {
	ctx := context.Background()
	var warn bytes.Buffer
	restore := logging.SetOutput(&bytes.Buffer{}, &warn)
	defer restore()

	s := New(&failingRepo{Repository: newTestRepo(t)})
	require.NoError(t, s.Load(ctx))

	err := s.SaveHabits(ctx, []domain.Habit{{ID: "h1", Title: "Stretch", Category: "health"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
	assert.Len(t, s.Habits(), 1)
	assert.Contains(t, warn.String(), "could not save habits")
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	s := New(repo)
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.SaveHabits(ctx, []domain.Habit{{ID: "keep", Title: "Keep", Category: "health"}}))

	schedule := domain.NewSchedule()
	schedule[domain.Friday] = []domain.ScheduleItem{{ID: "f1", Time: "Morning", Category: domain.CategorySocial, Activity: "Brunch"}}

	require.NoError(t, s.Replace(ctx, Snapshot{Schedule: schedule, Templates: []domain.Template{}}))

	reloaded := New(repo)
	require.NoError(t, reloaded.Load(ctx))
	assert.Len(t, reloaded.Schedule()[domain.Friday], 1)
	assert.Empty(t, reloaded.Schedule()[domain.Monday])
	assert.Empty(t, reloaded.Templates())
	assert.Equal(t, "keep", reloaded.Habits()[0].ID)
}
