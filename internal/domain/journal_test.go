package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodOrdering(t *testing.T) {
	assert.True(t, MoodGreat.Better(MoodGood))
	assert.True(t, MoodGood.Better(MoodNeutral))
	assert.True(t, MoodNeutral.Better(MoodBad))
	assert.True(t, MoodBad.Better(MoodAwful))
	assert.False(t, MoodAwful.Better(MoodAwful))
	assert.Equal(t, 0, Mood("meh").Rank())
}

func TestParseMood(t *testing.T) {
	m, err := ParseMood(" Great ")
	require.NoError(t, err)
	assert.Equal(t, MoodGreat, m)

	_, err = ParseMood("ecstatic")
	assert.Error(t, err)
}

func TestTemplateApply(t *testing.T) {
	tpl := Template{Category: CategoryGym, Activity: "Gym Session", Duration: "1h30m"}
	item := tpl.Apply(ScheduleItem{Time: "7:00-8:30", Activity: "Leg day"})

	assert.Equal(t, CategoryGym, item.Category)
	assert.Equal(t, "Leg day", item.Activity)
	assert.Equal(t, "1h30m", item.Duration)
	assert.Equal(t, "7:00-8:30", item.Time)
}

func TestUserStats(t *testing.T) {
	s := NewUserStats()
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 100, s.NextLevelXP())
}
