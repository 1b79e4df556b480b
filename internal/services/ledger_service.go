package services

import (
	"context"

	"weekplan/internal/calendar"
	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/logging"
	"weekplan/internal/store"
)

type ledgerServiceImpl struct {
	store *store.Store
	now   Clock
}

// NewLedgerService creates the gamification ledger.
func NewLedgerService(s *store.Store, now Clock) LedgerService {
	return &ledgerServiceImpl{store: s, now: now}
}

// ToggleCompletion flips itemID in the completion set of date and applies the
// XP, level and streak rules. Streak is measured against the clock's UTC date,
// not against date.
func (l *ledgerServiceImpl) ToggleCompletion(ctx context.Context, itemID, date string) (*ToggleResult, error) {
	if !calendar.IsDateKey(date) {
		return nil, errors.NewInvalidInputError("date", date, "expected YYYY-MM-DD")
	}

	log := l.store.CompletionLog()
	if !log.Contains(date, itemID) {
		if _, _, ok := l.store.Schedule().FindAnyDay(itemID); !ok {
			return nil, errors.NewNotFoundError("schedule item", itemID)
		}
	}

	completed := log.Toggle(date, itemID)
	delta := domain.XPPerCompletion
	if !completed {
		delta = -domain.XPPerCompletion
	}

	stats, leveledUp := l.store.UserStats().AddXP(delta)
	today := calendar.DateKey(l.now())
	yesterday, _ := calendar.PreviousDateKey(today)
	stats = stats.TouchStreak(today, yesterday)

	logging.Debugf("ledger: %s on %s completed=%t xp=%d level=%d streak=%d\n",
		itemID, date, completed, stats.XP, stats.Level, stats.Streak)

	result := &ToggleResult{
		ItemID:    itemID,
		Date:      date,
		Completed: completed,
		XPDelta:   delta,
		Stats:     stats,
		LeveledUp: leveledUp,
	}

	logErr := l.store.SaveCompletionLog(ctx, log)
	statsErr := l.store.SaveUserStats(ctx, stats)
	if logErr != nil {
		return result, logErr
	}
	return result, statsErr
}

func (l *ledgerServiceImpl) CompletedOn(date string) []string {
	return l.store.CompletionLog().Completed(date)
}

func (l *ledgerServiceImpl) Stats() domain.UserStats {
	return l.store.UserStats()
}
