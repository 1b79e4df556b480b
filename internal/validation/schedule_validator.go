package validation

import (
	"weekplan/internal/domain"
)

// ScheduleValidator checks schedule items and templates before they are saved.
// Time text is free-form: strict ranges and labels like "Morning" are both accepted.
type ScheduleValidator struct {
	validator *Validator
}

func NewScheduleValidator(v *Validator) *ScheduleValidator {
	if v == nil {
		v = NewValidator()
	}
	return &ScheduleValidator{validator: v}
}

// ValidateDay rejects anything outside the seven weekday keys.
func (sv *ScheduleValidator) ValidateDay(day domain.Day) error {
	if !day.IsValid() {
		ve := NewValidationError()
		ve.AddInvalidValueError("day", string(day), "must be a weekday name such as monday")
		return ve
	}
	return nil
}

// ValidateItem checks every user-supplied field of a schedule item.
func (sv *ScheduleValidator) ValidateItem(item domain.ScheduleItem) error {
	ve := NewValidationError()

	if !sv.validator.IsNonEmptyString(item.Time) {
		ve.AddRequiredError("time")
	}

	if !sv.validator.IsNonEmptyString(item.Activity) {
		ve.AddRequiredError("activity")
	} else if max := sv.validator.activityMaxLength(); !sv.validator.IsWithinLength(item.Activity, max) {
		ve.AddMaxLengthError("activity", item.Activity, max)
	}

	if max := sv.validator.notesMaxLength(); !sv.validator.IsWithinLength(item.Notes, max) {
		ve.AddMaxLengthError("notes", item.Notes, max)
	}

	if !item.Category.IsValid() {
		ve.AddInvalidValueError("category", string(item.Category), "unknown category")
	}

	if !item.Recurrence.IsValid() {
		ve.AddInvalidValueError("recurrence", string(item.Recurrence), "must be none, daily, weekly or monthly")
	}

	if item.Recurrence.Repeats() && item.RecurrenceEndDate != "" && !sv.validator.IsDateKey(item.RecurrenceEndDate) {
		ve.AddInvalidFormatError("recurrence_end_date", item.RecurrenceEndDate, "YYYY-MM-DD")
	}

	return ve.ErrOrNil()
}

// ValidateTemplate requires an activity and a known category.
func (sv *ScheduleValidator) ValidateTemplate(tpl domain.Template) error {
	ve := NewValidationError()

	if !sv.validator.IsNonEmptyString(tpl.Activity) {
		ve.AddRequiredError("activity")
	} else if max := sv.validator.activityMaxLength(); !sv.validator.IsWithinLength(tpl.Activity, max) {
		ve.AddMaxLengthError("activity", tpl.Activity, max)
	}

	if !tpl.Category.IsValid() {
		ve.AddInvalidValueError("category", string(tpl.Category), "unknown category")
	}

	return ve.ErrOrNil()
}
