package services

import (
	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/timerange"
)

// FindConflict returns the first item in items, in list order, whose strict
// range overlaps candidate's. The item with id excludeID is ignored so an edit
// never conflicts with itself. Candidates without a strict range never conflict.
func FindConflict(items []domain.ScheduleItem, candidate domain.ScheduleItem, excludeID string) (domain.ScheduleItem, bool) {
	want, ok := timerange.Parse(candidate.Time)
	if !ok {
		return domain.ScheduleItem{}, false
	}

	for _, existing := range items {
		if excludeID != "" && existing.ID == excludeID {
			continue
		}
		have, ok := timerange.Parse(existing.Time)
		if !ok {
			continue
		}
		if want.Overlaps(have) {
			return existing, true
		}
	}
	return domain.ScheduleItem{}, false
}

// CheckConflict wraps FindConflict as a conflict AppError.
func CheckConflict(items []domain.ScheduleItem, candidate domain.ScheduleItem, excludeID string) error {
	if existing, found := FindConflict(items, candidate, excludeID); found {
		return errors.NewConflictError(candidate.Time, existing.Activity, existing.Time)
	}
	return nil
}
