package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
)

func TestJournalService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday08)
	svc := env.services.JournalService

	_, err := svc.SaveEntry(ctx, "2025-01-05", domain.MoodBad, "tired")
	require.NoError(t, err)
	_, err = svc.SaveEntry(ctx, "2025-01-06", domain.MoodGood, " solid gym session ")
	require.NoError(t, err)

	entry, err := svc.GetEntry("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, domain.JournalEntry{Date: "2025-01-06", Mood: domain.MoodGood, Note: "solid gym session"}, entry)

	_, err = svc.SaveEntry(ctx, "2025-01-06", domain.MoodGreat, "")
	require.NoError(t, err)
	entry, err = svc.GetEntry("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, domain.MoodGreat, entry.Mood, "one entry per date, last write wins")

	entries := svc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-01-06", entries[0].Date)
	assert.Equal(t, "2025-01-05", entries[1].Date)

	_, err = svc.GetEntry("2024-01-01")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = svc.SaveEntry(ctx, "2025-01-07", domain.Mood("meh"), "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	assert.Len(t, env.reload(t).JournalLogs(), 2)
}

func TestTemplateService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday08)
	svc := env.services.TemplateService

	assert.Equal(t, domain.DefaultTemplates(), svc.List())

	require.NoError(t, svc.Add(ctx, domain.Template{Category: domain.CategorySocial, Activity: " Call family ", Duration: "30m"}))
	templates := svc.List()
	require.Len(t, templates, 6)
	assert.Equal(t, "Call family", templates[5].Activity)

	tpl, err := svc.Get(5)
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySocial, tpl.Category)

	_, err = svc.Get(-1)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	err = svc.Add(ctx, domain.Template{Category: domain.Category("chores"), Activity: "Dishes"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	assert.Len(t, env.reload(t).Templates(), 6)
}
