package validation

import (
	"weekplan/internal/domain"
)

// HabitValidator checks habits and journal entries.
type HabitValidator struct {
	validator *Validator
}

func NewHabitValidator(v *Validator) *HabitValidator {
	if v == nil {
		v = NewValidator()
	}
	return &HabitValidator{validator: v}
}

func (hv *HabitValidator) ValidateHabitTitle(title string) error {
	ve := NewValidationError()

	if !hv.validator.IsNonEmptyString(title) {
		ve.AddRequiredError("title")
	} else if max := hv.validator.habitTitleMaxLength(); !hv.validator.IsWithinLength(title, max) {
		ve.AddMaxLengthError("title", title, max)
	}

	return ve.ErrOrNil()
}

func (hv *HabitValidator) ValidateDate(date string) error {
	if !hv.validator.IsDateKey(date) {
		ve := NewValidationError()
		ve.AddInvalidFormatError("date", date, "YYYY-MM-DD")
		return ve
	}
	return nil
}

func (hv *HabitValidator) ValidateJournalEntry(entry domain.JournalEntry) error {
	ve := NewValidationError()

	if !hv.validator.IsDateKey(entry.Date) {
		ve.AddInvalidFormatError("date", entry.Date, "YYYY-MM-DD")
	}
	if !entry.Mood.IsValid() {
		ve.AddInvalidValueError("mood", string(entry.Mood), "must be great, good, neutral, bad or awful")
	}
	if max := hv.validator.notesMaxLength(); !hv.validator.IsWithinLength(entry.Note, max) {
		ve.AddMaxLengthError("note", entry.Note, max)
	}

	return ve.ErrOrNil()
}
