package services

import (
	"context"
	"math"

	"github.com/google/uuid"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/store"
	"weekplan/internal/validation"
)

type habitServiceImpl struct {
	store     *store.Store
	validator *validation.HabitValidator
	newID     func() string
}

// NewHabitService creates a new HabitService instance
func NewHabitService(s *store.Store, v *validation.Validator) HabitService {
	return &habitServiceImpl{
		store:     s,
		validator: validation.NewHabitValidator(v),
		newID:     uuid.NewString,
	}
}

func (h *habitServiceImpl) AddHabit(ctx context.Context, title, category string) (domain.Habit, error) {
	if err := h.validator.ValidateHabitTitle(title); err != nil {
		return domain.Habit{}, errors.NewValidationError("invalid habit", err)
	}

	habit := domain.NewHabit(h.newID(), title, category)
	habits := append(h.store.Habits(), habit)
	return habit, h.store.SaveHabits(ctx, habits)
}

// DeleteHabit removes the habit. Its past log entries are kept.
func (h *habitServiceImpl) DeleteHabit(ctx context.Context, id string) error {
	habits := h.store.Habits()
	for i, habit := range habits {
		if habit.ID == id {
			return h.store.SaveHabits(ctx, append(habits[:i:i], habits[i+1:]...))
		}
	}
	return errors.NewNotFoundError("habit", id)
}

// ToggleHabit flips habit id in the log for date. It never touches XP or streak.
func (h *habitServiceImpl) ToggleHabit(ctx context.Context, id, date string) (bool, error) {
	if err := h.validator.ValidateDate(date); err != nil {
		return false, errors.NewValidationError("invalid date", err)
	}

	logs := h.store.HabitLogs()
	if !logs.Contains(date, id) && !h.exists(id) {
		return false, errors.NewNotFoundError("habit", id)
	}

	done := logs.Toggle(date, id)
	return done, h.store.SaveHabitLogs(ctx, logs)
}

func (h *habitServiceImpl) exists(id string) bool {
	for _, habit := range h.store.Habits() {
		if habit.ID == id {
			return true
		}
	}
	return false
}

// Progress counts the current habits completed on date and rounds the share to a percentage.
func (h *habitServiceImpl) Progress(date string) HabitProgress {
	habits := h.store.Habits()
	logs := h.store.HabitLogs()

	progress := HabitProgress{
		Date:      date,
		Habits:    habits,
		Completed: make(map[string]bool, len(habits)),
	}
	for _, habit := range habits {
		if logs.Contains(date, habit.ID) {
			progress.Completed[habit.ID] = true
			progress.Done++
		}
	}
	if len(habits) > 0 {
		progress.Percent = int(math.Round(float64(progress.Done) / float64(len(habits)) * 100))
	}
	return progress
}
