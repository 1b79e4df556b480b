package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"weekplan/internal/config"
	"weekplan/internal/domain"
	"weekplan/internal/store"
	"weekplan/internal/timerange"
)

type reminderServiceImpl struct {
	store *store.Store
	cfg   *config.Config
	now   Clock
}

func NewReminderService(s *store.Store, cfg *config.Config, now Clock) ReminderService {
	return &reminderServiceImpl{store: s, cfg: cfg, now: now}
}

// Upcoming walks the configured number of days starting today and returns a
// reminder LeadTime before each strict-range item, skipping those already past.
func (r *reminderServiceImpl) Upcoming() []Reminder {
	loc := r.cfg.Location()
	now := r.now().In(loc)
	schedule := r.store.Schedule()
	lead := r.cfg.Reminders.LeadTime

	var reminders []Reminder
	for i := 0; i < r.cfg.Reminders.HorizonDays; i++ {
		date := now.AddDate(0, 0, i)
		day := weekdayKey(date.Weekday())

		for _, item := range schedule.Items(day) {
			slot, ok := timerange.Parse(item.Time)
			if !ok {
				continue
			}
			start := time.Date(date.Year(), date.Month(), date.Day(), 0, slot.Start, 0, 0, loc)
			at := start.Add(-lead)
			if !at.After(now) {
				continue
			}
			reminders = append(reminders, Reminder{
				ItemID:   item.ID,
				Day:      day,
				At:       at,
				StartsAt: start,
				Title:    "Upcoming: " + item.Activity,
				Body:     fmt.Sprintf("Starting at %s (%s)", item.Time, item.Category),
				Category: item.Category,
			})
		}
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].At.Before(reminders[j].At)
	})
	return reminders
}

func weekdayKey(w time.Weekday) domain.Day {
	return domain.Day(strings.ToLower(w.String()))
}
