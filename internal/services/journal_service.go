package services

import (
	"context"
	"sort"
	"strings"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/store"
	"weekplan/internal/validation"
)

type journalServiceImpl struct {
	store     *store.Store
	validator *validation.HabitValidator
}

func NewJournalService(s *store.Store, v *validation.Validator) JournalService {
	return &journalServiceImpl{store: s, validator: validation.NewHabitValidator(v)}
}

// SaveEntry writes the entry for date, replacing any earlier one.
func (j *journalServiceImpl) SaveEntry(ctx context.Context, date string, mood domain.Mood, note string) (domain.JournalEntry, error) {
	entry := domain.JournalEntry{Date: date, Mood: mood, Note: strings.TrimSpace(note)}
	if err := j.validator.ValidateJournalEntry(entry); err != nil {
		return domain.JournalEntry{}, errors.NewValidationError("invalid journal entry", err)
	}

	logs := j.store.JournalLogs()
	logs[date] = entry
	return entry, j.store.SaveJournalLogs(ctx, logs)
}

func (j *journalServiceImpl) GetEntry(date string) (domain.JournalEntry, error) {
	entry, ok := j.store.JournalLogs()[date]
	if !ok {
		return domain.JournalEntry{}, errors.NewNotFoundError("journal entry", date)
	}
	return entry, nil
}

// Entries returns every entry, newest first.
func (j *journalServiceImpl) Entries() []domain.JournalEntry {
	logs := j.store.JournalLogs()
	entries := make([]domain.JournalEntry, 0, len(logs))
	for _, entry := range logs {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Date > entries[b].Date
	})
	return entries
}
