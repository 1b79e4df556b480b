package domain

import "strings"

// DefaultHabitCategory is assigned to habits created without a category.
const DefaultHabitCategory = "health"

// Habit is a recurring behaviour tracked per day.
type Habit struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// NewHabit creates a habit with a trimmed title and the default category when none is given.
func NewHabit(id, title, category string) Habit {
	if strings.TrimSpace(category) == "" {
		category = DefaultHabitCategory
	}
	return Habit{
		ID:       id,
		Title:    strings.TrimSpace(title),
		Category: category,
	}
}

func (h Habit) IsValid() bool {
	return h.ID != "" && strings.TrimSpace(h.Title) != ""
}

// DateLog maps a YYYY-MM-DD key to the identifiers completed on that date.
// It backs both the habit log and the schedule completion log.
type DateLog map[string][]string

// Contains reports whether id is recorded for date.
func (l DateLog) Contains(date, id string) bool {
	for _, existing := range l[date] {
		if existing == id {
			return true
		}
	}
	return false
}

// Completed returns the identifiers recorded for date.
func (l DateLog) Completed(date string) []string {
	return l[date]
}

// Toggle adds id to date when absent and removes it when present. The date entry is
// created on first use. It returns true when id is recorded after the call.
func (l DateLog) Toggle(date, id string) bool {
	ids := l[date]
	for i, existing := range ids {
		if existing == id {
			l[date] = append(ids[:i:i], ids[i+1:]...)
			return false
		}
	}
	l[date] = append(ids, id)
	return true
}

// Clone deep-copies the log.
func (l DateLog) Clone() DateLog {
	out := make(DateLog, len(l))
	for date, ids := range l {
		copied := make([]string, len(ids))
		copy(copied, ids)
		out[date] = copied
	}
	return out
}
