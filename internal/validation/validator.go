package validation

import (
	"strings"
	"unicode/utf8"

	"weekplan/internal/calendar"
	"weekplan/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a validator using built-in limits.
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a validator using the configured limits.
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinLength reports whether the trimmed string has at most max runes.
func (v *Validator) IsWithinLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// IsDateKey reports whether s is a YYYY-MM-DD calendar date.
func (v *Validator) IsDateKey(s string) bool {
	return calendar.IsDateKey(s)
}

func (v *Validator) activityMaxLength() int {
	if v.config != nil {
		return v.config.Validation.ActivityMaxLength
	}
	return 120
}

func (v *Validator) notesMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NotesMaxLength
	}
	return 1000
}

func (v *Validator) habitTitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.HabitTitleMaxLength
	}
	return 120
}
