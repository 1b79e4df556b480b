package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHabit(t *testing.T) {
	h := NewHabit("1", "  Drink water ", "")
	assert.Equal(t, "Drink water", h.Title)
	assert.Equal(t, DefaultHabitCategory, h.Category)
	assert.True(t, h.IsValid())

	assert.False(t, NewHabit("2", "   ", "mind").IsValid())
}

func TestDateLog_Toggle(t *testing.T) {
	log := DateLog{}

	assert.True(t, log.Toggle("2025-01-01", "a"))
	assert.True(t, log.Toggle("2025-01-01", "b"))
	assert.True(t, log.Contains("2025-01-01", "a"))
	assert.Equal(t, []string{"a", "b"}, log.Completed("2025-01-01"))

	assert.False(t, log.Toggle("2025-01-01", "a"))
	assert.False(t, log.Contains("2025-01-01", "a"))
	assert.Equal(t, []string{"b"}, log.Completed("2025-01-01"))

	assert.False(t, log.Contains("2025-01-02", "b"))
	assert.Nil(t, log.Completed("2025-01-02"))
}

func TestDateLog_CloneIsIndependent(t *testing.T) {
	log := DateLog{"2025-01-01": {"a", "b"}}
	clone := log.Clone()
	clone.Toggle("2025-01-01", "a")

	assert.Equal(t, []string{"a", "b"}, log["2025-01-01"])
	assert.Equal(t, []string{"b"}, clone["2025-01-01"])
}
