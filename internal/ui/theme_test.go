package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"weekplan/internal/domain"
)

func TestLabelValue(t *testing.T) {
	out := LabelValue("XP", 120)
	assert.Contains(t, out, "XP:")
	assert.True(t, strings.HasSuffix(out, " 120"))
}

func TestCategoryTag(t *testing.T) {
	for _, c := range domain.Categories {
		assert.Contains(t, CategoryTag(c), string(c))
	}
	assert.Contains(t, CategoryTag("mystery"), "mystery")
}

func TestBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		filled  int
	}{
		{"empty", 0, 0},
		{"half", 50, 5},
		{"full", 100, 10},
		{"clamped above", 250, 10},
		{"clamped below", -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := Bar(tt.percent, 10)
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"))
		})
	}
}

func TestCheck(t *testing.T) {
	assert.Equal(t, IconDone, Check(true))
	assert.Equal(t, IconOpen, Check(false))
}
