package domain

import (
	"fmt"
	"strings"
)

// Mood is a point on the fixed journal scale great > good > neutral > bad > awful.
type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodBad     Mood = "bad"
	MoodAwful   Mood = "awful"
)

// Moods lists the scale from best to worst.
var Moods = []Mood{MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodAwful}

// Rank returns 5 for great down to 1 for awful, and 0 for unknown moods.
func (m Mood) Rank() int {
	for i, mood := range Moods {
		if mood == m {
			return len(Moods) - i
		}
	}
	return 0
}

func (m Mood) IsValid() bool {
	return m.Rank() > 0
}

// Better reports whether m ranks above other.
func (m Mood) Better(other Mood) bool {
	return m.Rank() > other.Rank()
}

// ParseMood is case-insensitive.
func ParseMood(input string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(input)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mood: %q", input)
	}
	return m, nil
}

// JournalEntry is the mood and note recorded for one date.
type JournalEntry struct {
	Date string `json:"date"`
	Mood Mood   `json:"mood"`
	Note string `json:"note"`
}

// JournalLog keeps one entry per date.
type JournalLog map[string]JournalEntry
