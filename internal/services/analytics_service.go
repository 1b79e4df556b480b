package services

import (
	"sort"

	"weekplan/internal/domain"
	"weekplan/internal/store"
	"weekplan/internal/timerange"
)

type analyticsServiceImpl struct {
	store *store.Store
}

func NewAnalyticsService(s *store.Store) AnalyticsService {
	return &analyticsServiceImpl{store: s}
}

// WeeklySummary totals strict-range minutes per category, largest first.
// Items with vague times are not counted.
func (a *analyticsServiceImpl) WeeklySummary() WeeklySummary {
	schedule := a.store.Schedule()
	minutes := make(map[domain.Category]int)
	total := 0

	for _, day := range domain.Days {
		for _, item := range schedule.Items(day) {
			r, ok := timerange.Parse(item.Time)
			if !ok {
				continue
			}
			minutes[item.Category] += r.Minutes()
			total += r.Minutes()
		}
	}

	summary := WeeklySummary{
		TotalMinutes: total,
		Total:        timerange.FormatDuration(total),
		Categories:   make([]CategoryTotal, 0, len(minutes)),
	}
	for category, m := range minutes {
		ct := CategoryTotal{Category: category, Minutes: m, Duration: timerange.FormatDuration(m)}
		if total > 0 {
			ct.Percent = float64(m) / float64(total) * 100
		}
		summary.Categories = append(summary.Categories, ct)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		ci, cj := summary.Categories[i], summary.Categories[j]
		if ci.Minutes != cj.Minutes {
			return ci.Minutes > cj.Minutes
		}
		return ci.Category < cj.Category
	})
	return summary
}
