package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/logging"
	"weekplan/internal/store"
	"weekplan/internal/validation"
)

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	store     *store.Store
	validator *validation.ScheduleValidator
	newID     func() string
}

// NewScheduleService creates a new ScheduleService instance
func NewScheduleService(s *store.Store, v *validation.Validator) ScheduleService {
	return &scheduleServiceImpl{
		store:     s,
		validator: validation.NewScheduleValidator(v),
		newID:     uuid.NewString,
	}
}

func (s *scheduleServiceImpl) Schedule() domain.Schedule {
	return s.store.Schedule()
}

func (s *scheduleServiceImpl) ListDay(day domain.Day) ([]domain.ScheduleItem, error) {
	if err := s.validator.ValidateDay(day); err != nil {
		return nil, errors.NewValidationError("invalid day", err)
	}
	return s.store.Schedule().Items(day), nil
}

func (s *scheduleServiceImpl) buildItem(input ItemInput) domain.ScheduleItem {
	item := domain.ScheduleItem{
		Time:              strings.TrimSpace(input.Time),
		Duration:          strings.TrimSpace(input.Duration),
		Category:          input.Category,
		Activity:          strings.TrimSpace(input.Activity),
		Notes:             input.Notes,
		Recurrence:        input.Recurrence,
		RecurrenceEndDate: strings.TrimSpace(input.RecurrenceEndDate),
	}
	return item.Normalize()
}

func (s *scheduleServiceImpl) validate(day domain.Day, item domain.ScheduleItem) error {
	if err := s.validator.ValidateDay(day); err != nil {
		return errors.NewValidationError("invalid day", err)
	}
	if err := s.validator.ValidateItem(item); err != nil {
		return errors.NewValidationError("invalid schedule item", err)
	}
	return nil
}

// AddItem appends a new item to day unless its strict range overlaps another item.
func (s *scheduleServiceImpl) AddItem(ctx context.Context, day domain.Day, input ItemInput) (domain.ScheduleItem, error) {
	item := s.buildItem(input)
	if err := s.validate(day, item); err != nil {
		return domain.ScheduleItem{}, err
	}

	schedule := s.store.Schedule()
	if err := CheckConflict(schedule.Items(day), item, ""); err != nil {
		logging.Debugf("schedule: rejected %s on %s: %v\n", item.Time, day, err)
		return domain.ScheduleItem{}, err
	}

	item.ID = s.uniqueID(schedule.Items(day))
	schedule[day] = append(schedule.Items(day), item)

	return item, s.store.SaveSchedule(ctx, schedule)
}

// UpdateItem replaces item id on day, keeping its identifier.
func (s *scheduleServiceImpl) UpdateItem(ctx context.Context, day domain.Day, id string, input ItemInput) (domain.ScheduleItem, error) {
	item := s.buildItem(input)
	if err := s.validate(day, item); err != nil {
		return domain.ScheduleItem{}, err
	}

	schedule := s.store.Schedule()
	_, idx, ok := schedule.Find(day, id)
	if !ok {
		return domain.ScheduleItem{}, errors.NewNotFoundError("schedule item", id)
	}
	if err := CheckConflict(schedule.Items(day), item, id); err != nil {
		return domain.ScheduleItem{}, err
	}

	item.ID = id
	schedule[day][idx] = item

	return item, s.store.SaveSchedule(ctx, schedule)
}

func (s *scheduleServiceImpl) DeleteItem(ctx context.Context, day domain.Day, id string) error {
	if err := s.validator.ValidateDay(day); err != nil {
		return errors.NewValidationError("invalid day", err)
	}

	schedule := s.store.Schedule()
	_, idx, ok := schedule.Find(day, id)
	if !ok {
		return errors.NewNotFoundError("schedule item", id)
	}

	items := schedule[day]
	schedule[day] = append(items[:idx:idx], items[idx+1:]...)
	return s.store.SaveSchedule(ctx, schedule)
}

// Reset restores the default plan.
func (s *scheduleServiceImpl) Reset(ctx context.Context) error {
	return s.store.SaveSchedule(ctx, domain.DefaultSchedule())
}

// AddFromTemplate prefills input from template index; fields set in input win.
func (s *scheduleServiceImpl) AddFromTemplate(ctx context.Context, day domain.Day, index int, input ItemInput) (domain.ScheduleItem, error) {
	templates := s.store.Templates()
	if index < 0 || index >= len(templates) {
		return domain.ScheduleItem{}, errors.NewInvalidInputError("template", index, "no template at that position")
	}

	filled := templates[index].Apply(domain.ScheduleItem{
		Time:              input.Time,
		Duration:          input.Duration,
		Category:          input.Category,
		Activity:          input.Activity,
		Notes:             input.Notes,
		Recurrence:        input.Recurrence,
		RecurrenceEndDate: input.RecurrenceEndDate,
	})

	return s.AddItem(ctx, day, ItemInput{
		Time:              filled.Time,
		Duration:          filled.Duration,
		Category:          filled.Category,
		Activity:          filled.Activity,
		Notes:             filled.Notes,
		Recurrence:        filled.Recurrence,
		RecurrenceEndDate: filled.RecurrenceEndDate,
	})
}

func (s *scheduleServiceImpl) uniqueID(items []domain.ScheduleItem) string {
	for {
		id := s.newID()
		taken := false
		for _, item := range items {
			if item.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
