package api

import (
	"context"
	"io"
	"time"

	"weekplan/internal/calendar"
	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/services"
	"weekplan/internal/timerange"
)

// Business domain types
type PlannedItem struct {
	Item      domain.ScheduleItem `json:"item"`
	Completed bool                `json:"completed"`
	Minutes   int                 `json:"minutes"` // 0 for vague times
}

type DayPlan struct {
	Day   domain.Day    `json:"day"`
	Date  string        `json:"date"`
	Items []PlannedItem `json:"items"`
	Done  int           `json:"done"`
}

type WeekPlan struct {
	Week services.WeekInfo `json:"week"`
	Days []*DayPlan        `json:"days"`
}

type Dashboard struct {
	Date        string                 `json:"date"`
	Stats       domain.UserStats       `json:"stats"`
	Habits      services.HabitProgress `json:"habits"`
	Summary     services.WeeklySummary `json:"summary"`
	Journal     *domain.JournalEntry   `json:"journal,omitempty"`
	CompletedOn int                    `json:"completed_on"`
}

// BusinessAPI is the workflow surface used by the CLI.
type BusinessAPI interface {
	// ========== Schedule Workflows ==========

	// GetDayPlan returns the items of day with their completion state on date.
	GetDayPlan(ctx context.Context, day domain.Day, date string) (*DayPlan, error)

	// GetWeekPlan returns every day of the ISO week, each anchored to its calendar date.
	GetWeekPlan(ctx context.Context, week, year int) (*WeekPlan, error)

	AddItem(ctx context.Context, day domain.Day, input services.ItemInput) (*domain.ScheduleItem, error)
	AddItemFromTemplate(ctx context.Context, day domain.Day, index int, input services.ItemInput) (*domain.ScheduleItem, error)
	UpdateItem(ctx context.Context, day domain.Day, id string, input services.ItemInput) (*domain.ScheduleItem, error)
	DeleteItem(ctx context.Context, day domain.Day, id string) error
	ResetSchedule(ctx context.Context) error

	// ToggleItem marks an item done or not done on date and applies XP and streak.
	ToggleItem(ctx context.Context, id, date string) (*services.ToggleResult, error)

	// ========== Habits and Journal ==========

	AddHabit(ctx context.Context, title, category string) (*domain.Habit, error)
	DeleteHabit(ctx context.Context, id string) error
	ToggleHabit(ctx context.Context, id, date string) (bool, error)
	GetHabitProgress(ctx context.Context, date string) (*services.HabitProgress, error)

	SaveJournalEntry(ctx context.Context, date, mood, note string) (*domain.JournalEntry, error)
	GetJournalEntry(ctx context.Context, date string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// ========== Templates ==========

	ListTemplates(ctx context.Context) ([]domain.Template, error)
	AddTemplate(ctx context.Context, tpl domain.Template) error

	// ========== Data Exchange ==========

	ExportCSV(ctx context.Context, w io.Writer) (*services.ExportResult, error)
	ExportICS(ctx context.Context, w io.Writer, week, year int) (*services.ExportResult, error)
	Backup(ctx context.Context, w io.Writer) error
	Restore(ctx context.Context, r io.Reader) error

	// ========== Dashboard and Analytics ==========

	GetDashboard(ctx context.Context, date string) (*Dashboard, error)
	GetWeeklySummary(ctx context.Context) (*services.WeeklySummary, error)
	GetUpcomingReminders(ctx context.Context) ([]services.Reminder, error)

	// ResolveWeek returns the ISO week containing date (today when empty), moved by offset weeks.
	ResolveWeek(ctx context.Context, date string, offset int) (*services.WeekInfo, error)

	// Today is the UTC date key of the current day.
	Today() string
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services *services.ServiceContainer
	now      services.Clock
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(container *services.ServiceContainer, now services.Clock) BusinessAPI {
	if now == nil {
		now = time.Now
	}
	return &businessAPIImpl{services: container, now: now}
}

func (b *businessAPIImpl) Today() string {
	return calendar.DateKey(b.now())
}

func (b *businessAPIImpl) dateOrToday(date string) (string, error) {
	if date == "" {
		return b.Today(), nil
	}
	if !calendar.IsDateKey(date) {
		return "", errors.NewInvalidInputError("date", date, "expected YYYY-MM-DD")
	}
	return date, nil
}

// ========== Schedule Workflows ==========

func (b *businessAPIImpl) GetDayPlan(ctx context.Context, day domain.Day, date string) (*DayPlan, error) {
	date, err := b.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	items, err := b.services.ScheduleService.ListDay(day)
	if err != nil {
		return nil, err
	}
	return b.buildDayPlan(day, date, items), nil
}

func (b *businessAPIImpl) buildDayPlan(day domain.Day, date string, items []domain.ScheduleItem) *DayPlan {
	completed := make(map[string]bool)
	for _, id := range b.services.LedgerService.CompletedOn(date) {
		completed[id] = true
	}

	plan := &DayPlan{Day: day, Date: date, Items: make([]PlannedItem, 0, len(items))}
	for _, item := range items {
		planned := PlannedItem{Item: item, Completed: completed[item.ID]}
		if r, ok := timerange.Parse(item.Time); ok {
			planned.Minutes = r.Minutes()
		}
		if planned.Completed {
			plan.Done++
		}
		plan.Items = append(plan.Items, planned)
	}
	return plan
}

func (b *businessAPIImpl) GetWeekPlan(ctx context.Context, week, year int) (*WeekPlan, error) {
	info := b.services.CalendarService.Week(week, year)
	schedule := b.services.ScheduleService.Schedule()

	plan := &WeekPlan{Week: info, Days: make([]*DayPlan, 0, len(domain.Days))}
	for i, day := range domain.Days {
		date := calendar.DateKey(calendar.DayOfWeek(info.Monday, i))
		plan.Days = append(plan.Days, b.buildDayPlan(day, date, schedule.Items(day)))
	}
	return plan, nil
}

func (b *businessAPIImpl) AddItem(ctx context.Context, day domain.Day, input services.ItemInput) (*domain.ScheduleItem, error) {
	item, err := b.services.ScheduleService.AddItem(ctx, day, input)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (b *businessAPIImpl) AddItemFromTemplate(ctx context.Context, day domain.Day, index int, input services.ItemInput) (*domain.ScheduleItem, error) {
	item, err := b.services.ScheduleService.AddFromTemplate(ctx, day, index, input)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (b *businessAPIImpl) UpdateItem(ctx context.Context, day domain.Day, id string, input services.ItemInput) (*domain.ScheduleItem, error) {
	item, err := b.services.ScheduleService.UpdateItem(ctx, day, id, input)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (b *businessAPIImpl) DeleteItem(ctx context.Context, day domain.Day, id string) error {
	return b.services.ScheduleService.DeleteItem(ctx, day, id)
}

func (b *businessAPIImpl) ResetSchedule(ctx context.Context) error {
	return b.services.ScheduleService.Reset(ctx)
}

func (b *businessAPIImpl) ToggleItem(ctx context.Context, id, date string) (*services.ToggleResult, error) {
	date, err := b.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	return b.services.LedgerService.ToggleCompletion(ctx, id, date)
}

// ========== Habits and Journal ==========

func (b *businessAPIImpl) AddHabit(ctx context.Context, title, category string) (*domain.Habit, error) {
	habit, err := b.services.HabitService.AddHabit(ctx, title, category)
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (b *businessAPIImpl) DeleteHabit(ctx context.Context, id string) error {
	return b.services.HabitService.DeleteHabit(ctx, id)
}

func (b *businessAPIImpl) ToggleHabit(ctx context.Context, id, date string) (bool, error) {
	date, err := b.dateOrToday(date)
	if err != nil {
		return false, err
	}
	return b.services.HabitService.ToggleHabit(ctx, id, date)
}

func (b *businessAPIImpl) GetHabitProgress(ctx context.Context, date string) (*services.HabitProgress, error) {
	date, err := b.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	progress := b.services.HabitService.Progress(date)
	return &progress, nil
}

func (b *businessAPIImpl) SaveJournalEntry(ctx context.Context, date, mood, note string) (*domain.JournalEntry, error) {
	date, err := b.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	m, err := domain.ParseMood(mood)
	if err != nil {
		return nil, errors.NewInvalidInputError("mood", mood, "must be great, good, neutral, bad or awful")
	}
	entry, err := b.services.JournalService.SaveEntry(ctx, date, m, note)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (b *businessAPIImpl) GetJournalEntry(ctx context.Context, date string) (*domain.JournalEntry, error) {
	date, err := b.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	entry, err := b.services.JournalService.GetEntry(date)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (b *businessAPIImpl) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return b.services.JournalService.Entries(), nil
}

// ========== Templates ==========

func (b *businessAPIImpl) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return b.services.TemplateService.List(), nil
}

func (b *businessAPIImpl) AddTemplate(ctx context.Context, tpl domain.Template) error {
	return b.services.TemplateService.Add(ctx, tpl)
}

// ========== Data Exchange ==========

func (b *businessAPIImpl) ExportCSV(ctx context.Context, w io.Writer) (*services.ExportResult, error) {
	return b.services.ExportService.WriteCSV(w)
}

func (b *businessAPIImpl) ExportICS(ctx context.Context, w io.Writer, week, year int) (*services.ExportResult, error) {
	return b.services.ExportService.WriteICS(w, week, year)
}

func (b *businessAPIImpl) Backup(ctx context.Context, w io.Writer) error {
	return b.services.BackupService.Backup(w)
}

func (b *businessAPIImpl) Restore(ctx context.Context, r io.Reader) error {
	return b.services.BackupService.Restore(ctx, r)
}

// ========== Dashboard and Analytics ==========

func (b *businessAPIImpl) GetDashboard(ctx context.Context, date string) (*Dashboard, error) {
	date, err := b.dateOrToday(date)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Date:        date,
		Stats:       b.services.LedgerService.Stats(),
		Habits:      b.services.HabitService.Progress(date),
		Summary:     b.services.AnalyticsService.WeeklySummary(),
		CompletedOn: len(b.services.LedgerService.CompletedOn(date)),
	}
	if entry, err := b.services.JournalService.GetEntry(date); err == nil {
		dashboard.Journal = &entry
	}
	return dashboard, nil
}

func (b *businessAPIImpl) GetWeeklySummary(ctx context.Context) (*services.WeeklySummary, error) {
	summary := b.services.AnalyticsService.WeeklySummary()
	return &summary, nil
}

func (b *businessAPIImpl) GetUpcomingReminders(ctx context.Context) ([]services.Reminder, error) {
	return b.services.ReminderService.Upcoming(), nil
}

func (b *businessAPIImpl) ResolveWeek(ctx context.Context, date string, offset int) (*services.WeekInfo, error) {
	var info services.WeekInfo
	if date == "" {
		info = b.services.CalendarService.CurrentWeek()
	} else {
		t, err := calendar.ParseDateKey(date)
		if err != nil {
			return nil, errors.NewInvalidInputError("date", date, "expected YYYY-MM-DD")
		}
		info = b.services.CalendarService.WeekOf(t)
	}
	if offset != 0 {
		info = b.services.CalendarService.WeekOf(info.Monday.AddDate(0, 0, 7*offset))
	}
	return &info, nil
}
