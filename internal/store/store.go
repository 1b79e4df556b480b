// Package store keeps the in-memory copy of every persisted entity and writes
// each one back to the document repository when it changes.
package store

import (
	"context"
	"encoding/json"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/logging"
	"weekplan/internal/repository/sqlite"
)

// Document keys, one per entity.
const (
	KeySchedule      = "schedule"
	KeyTemplates     = "templates"
	KeyHabits        = "habits"
	KeyHabitLogs     = "habitLogs"
	KeyJournalLogs   = "journalLogs"
	KeyUserStats     = "userStats"
	KeyCompletionLog = "completionLog"
)

// Store is the single owner of application state. Load it once, then read
// through the accessors and write through the Save methods. Accessors return
// copies so callers can compute a new value without touching the stored one.
//
// A Save updates memory before persisting. When persistence fails the error is
// logged and returned, and the in-memory value stays authoritative.
type Store struct {
	repo sqlite.Repository

	schedule      domain.Schedule
	templates     []domain.Template
	habits        []domain.Habit
	habitLogs     domain.DateLog
	journalLogs   domain.JournalLog
	userStats     domain.UserStats
	completionLog domain.DateLog
}

// New returns a store holding default values. Call Load to read persisted state.
func New(repo sqlite.Repository) *Store {
	return &Store{
		repo:          repo,
		schedule:      domain.DefaultSchedule(),
		templates:     domain.DefaultTemplates(),
		habits:        []domain.Habit{},
		habitLogs:     domain.DateLog{},
		journalLogs:   domain.JournalLog{},
		userStats:     domain.NewUserStats(),
		completionLog: domain.DateLog{},
	}
}

// Load reads every entity independently. Absent or undecodable documents keep
// their default value; only repository failures other than not-found are returned.
func (s *Store) Load(ctx context.Context) error {
	var err error
	if s.schedule, err = loadDocument(ctx, s.repo, KeySchedule, domain.DefaultSchedule); err != nil {
		return err
	}
	s.schedule = fillDays(s.schedule)

	if s.templates, err = loadDocument(ctx, s.repo, KeyTemplates, domain.DefaultTemplates); err != nil {
		return err
	}
	if s.habits, err = loadDocument(ctx, s.repo, KeyHabits, func() []domain.Habit { return []domain.Habit{} }); err != nil {
		return err
	}
	if s.habitLogs, err = loadDocument(ctx, s.repo, KeyHabitLogs, func() domain.DateLog { return domain.DateLog{} }); err != nil {
		return err
	}
	if s.journalLogs, err = loadDocument(ctx, s.repo, KeyJournalLogs, func() domain.JournalLog { return domain.JournalLog{} }); err != nil {
		return err
	}
	if s.userStats, err = loadDocument(ctx, s.repo, KeyUserStats, domain.NewUserStats); err != nil {
		return err
	}
	if s.completionLog, err = loadDocument(ctx, s.repo, KeyCompletionLog, func() domain.DateLog { return domain.DateLog{} }); err != nil {
		return err
	}

	if s.userStats.Level < 1 {
		s.userStats.Level = 1
	}
	if s.templates == nil {
		s.templates = []domain.Template{}
	}
	if s.habits == nil {
		s.habits = []domain.Habit{}
	}
	if s.habitLogs == nil {
		s.habitLogs = domain.DateLog{}
	}
	if s.journalLogs == nil {
		s.journalLogs = domain.JournalLog{}
	}
	if s.completionLog == nil {
		s.completionLog = domain.DateLog{}
	}
	logging.Debugf("store: loaded %d schedule items, %d habits\n", s.schedule.Count(), len(s.habits))
	return nil
}

func loadDocument[T any](ctx context.Context, repo sqlite.Repository, key string, def func() T) (T, error) {
	doc, err := repo.GetDocument(ctx, key)
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		logging.Debugf("store: %s not found, using default\n", key)
		return def(), nil
	}
	if err != nil {
		var zero T
		return zero, err
	}

	var value T
	if err := json.Unmarshal([]byte(doc.Value), &value); err != nil {
		logging.Warnf("stored %s is corrupt, using default: %v\n", key, err)
		return def(), nil
	}
	return value, nil
}

func fillDays(s domain.Schedule) domain.Schedule {
	if s == nil {
		return domain.DefaultSchedule()
	}
	for _, day := range domain.Days {
		if s[day] == nil {
			s[day] = []domain.ScheduleItem{}
		}
	}
	for key := range s {
		if !key.IsValid() {
			delete(s, key)
		}
	}
	return s
}

func (s *Store) persist(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeDatabase, "encode "+key)
	}
	if err := s.repo.PutDocument(ctx, key, string(data)); err != nil {
		logging.Warnf("could not save %s: %v\n", key, err)
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewDatabaseError("save "+key, err)
	}
	logging.Debugf("store: saved %s (%d bytes)\n", key, len(data))
	return nil
}

func (s *Store) Schedule() domain.Schedule { return s.schedule.Clone() }

func (s *Store) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	s.schedule = fillDays(schedule.Clone())
	return s.persist(ctx, KeySchedule, s.schedule)
}

func (s *Store) Templates() []domain.Template {
	return append([]domain.Template(nil), s.templates...)
}

func (s *Store) SaveTemplates(ctx context.Context, templates []domain.Template) error {
	s.templates = append([]domain.Template{}, templates...)
	return s.persist(ctx, KeyTemplates, s.templates)
}

func (s *Store) Habits() []domain.Habit {
	return append([]domain.Habit(nil), s.habits...)
}

func (s *Store) SaveHabits(ctx context.Context, habits []domain.Habit) error {
	s.habits = append([]domain.Habit{}, habits...)
	return s.persist(ctx, KeyHabits, s.habits)
}

func (s *Store) HabitLogs() domain.DateLog { return s.habitLogs.Clone() }

func (s *Store) SaveHabitLogs(ctx context.Context, logs domain.DateLog) error {
	s.habitLogs = logs.Clone()
	return s.persist(ctx, KeyHabitLogs, s.habitLogs)
}

func (s *Store) JournalLogs() domain.JournalLog {
	out := make(domain.JournalLog, len(s.journalLogs))
	for k, v := range s.journalLogs {
		out[k] = v
	}
	return out
}

func (s *Store) SaveJournalLogs(ctx context.Context, logs domain.JournalLog) error {
	s.journalLogs = make(domain.JournalLog, len(logs))
	for k, v := range logs {
		s.journalLogs[k] = v
	}
	return s.persist(ctx, KeyJournalLogs, s.journalLogs)
}

func (s *Store) UserStats() domain.UserStats { return s.userStats }

func (s *Store) SaveUserStats(ctx context.Context, stats domain.UserStats) error {
	s.userStats = stats
	return s.persist(ctx, KeyUserStats, s.userStats)
}

func (s *Store) CompletionLog() domain.DateLog { return s.completionLog.Clone() }

func (s *Store) SaveCompletionLog(ctx context.Context, log domain.DateLog) error {
	s.completionLog = log.Clone()
	return s.persist(ctx, KeyCompletionLog, s.completionLog)
}

// Snapshot is a set of entities replaced together. Nil fields are left unchanged.
type Snapshot struct {
	Schedule  domain.Schedule
	Templates []domain.Template
	Habits    []domain.Habit
	HabitLogs domain.DateLog
}

// Replace swaps in every non-nil entity of snap and persists them in one transaction.
func (s *Store) Replace(ctx context.Context, snap Snapshot) error {
	docs := make(map[string]string)
	encode := func(key string, v interface{}) error {
		data, err := json.Marshal(v)
		if err != nil {
			return errors.WrapError(err, errors.ErrorTypeDatabase, "encode "+key)
		}
		docs[key] = string(data)
		return nil
	}

	if snap.Schedule != nil {
		s.schedule = fillDays(snap.Schedule.Clone())
		if err := encode(KeySchedule, s.schedule); err != nil {
			return err
		}
	}
	if snap.Templates != nil {
		s.templates = append([]domain.Template{}, snap.Templates...)
		if err := encode(KeyTemplates, s.templates); err != nil {
			return err
		}
	}
	if snap.Habits != nil {
		s.habits = append([]domain.Habit{}, snap.Habits...)
		if err := encode(KeyHabits, s.habits); err != nil {
			return err
		}
	}
	if snap.HabitLogs != nil {
		s.habitLogs = snap.HabitLogs.Clone()
		if err := encode(KeyHabitLogs, s.habitLogs); err != nil {
			return err
		}
	}

	if len(docs) == 0 {
		return nil
	}
	if err := s.repo.PutDocuments(ctx, docs); err != nil {
		logging.Warnf("could not save restored data: %v\n", err)
		return err
	}
	return nil
}
