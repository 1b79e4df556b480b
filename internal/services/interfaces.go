package services

import (
	"context"
	"io"
	"time"

	"weekplan/internal/domain"
)

// Clock returns the current instant. Services take one so date rules can be tested.
type Clock func() time.Time

// ToggleResult describes the outcome of completing or un-completing a schedule item.
type ToggleResult struct {
	ItemID    string           `json:"item_id"`
	Date      string           `json:"date"`
	Completed bool             `json:"completed"`
	XPDelta   int              `json:"xp_delta"`
	Stats     domain.UserStats `json:"stats"`
	LeveledUp bool             `json:"leveled_up"`
}

// HabitProgress is today's view of the habit list.
type HabitProgress struct {
	Date      string          `json:"date"`
	Habits    []domain.Habit  `json:"habits"`
	Completed map[string]bool `json:"completed"`
	Done      int             `json:"done"`
	Percent   int             `json:"percent"`
}

// CategoryTotal is the planned time for one category over the week.
type CategoryTotal struct {
	Category domain.Category `json:"category"`
	Minutes  int             `json:"minutes"`
	Percent  float64         `json:"percent"`
	Duration string          `json:"duration"`
}

// WeeklySummary aggregates strict-range minutes per category.
type WeeklySummary struct {
	TotalMinutes int             `json:"total_minutes"`
	Total        string          `json:"total"`
	Categories   []CategoryTotal `json:"categories"`
}

// Reminder is a notification due shortly before a scheduled activity.
type Reminder struct {
	ItemID   string          `json:"item_id"`
	Day      domain.Day      `json:"day"`
	At       time.Time       `json:"at"`
	StartsAt time.Time       `json:"starts_at"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Category domain.Category `json:"category"`
}

// WeekInfo identifies an ISO week and its Monday.
type WeekInfo struct {
	Week   int       `json:"week"`
	Year   int       `json:"year"`
	Monday time.Time `json:"monday"`
	Sunday time.Time `json:"sunday"`
}

// ExportResult reports what an export wrote.
type ExportResult struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Items       int    `json:"items"`
	Skipped     int    `json:"skipped"`
}

// ItemInput carries user-editable fields for a new or edited schedule item.
type ItemInput struct {
	Time              string
	Duration          string
	Category          domain.Category
	Activity          string
	Notes             string
	Recurrence        domain.Recurrence
	RecurrenceEndDate string
}

// ScheduleService owns the weekly plan and its conflict rule.
type ScheduleService interface {
	Schedule() domain.Schedule
	ListDay(day domain.Day) ([]domain.ScheduleItem, error)
	AddItem(ctx context.Context, day domain.Day, input ItemInput) (domain.ScheduleItem, error)
	UpdateItem(ctx context.Context, day domain.Day, id string, input ItemInput) (domain.ScheduleItem, error)
	DeleteItem(ctx context.Context, day domain.Day, id string) error
	Reset(ctx context.Context) error
	AddFromTemplate(ctx context.Context, day domain.Day, index int, input ItemInput) (domain.ScheduleItem, error)
}

// LedgerService applies completion toggles to the gamification stats.
type LedgerService interface {
	ToggleCompletion(ctx context.Context, itemID, date string) (*ToggleResult, error)
	CompletedOn(date string) []string
	Stats() domain.UserStats
}

// HabitService manages habits and their daily log.
type HabitService interface {
	AddHabit(ctx context.Context, title, category string) (domain.Habit, error)
	DeleteHabit(ctx context.Context, id string) error
	ToggleHabit(ctx context.Context, id, date string) (bool, error)
	Progress(date string) HabitProgress
}

// JournalService stores one mood entry per date.
type JournalService interface {
	SaveEntry(ctx context.Context, date string, mood domain.Mood, note string) (domain.JournalEntry, error)
	GetEntry(date string) (domain.JournalEntry, error)
	Entries() []domain.JournalEntry
}

// TemplateService manages quick-add templates.
type TemplateService interface {
	List() []domain.Template
	Add(ctx context.Context, tpl domain.Template) error
	Get(index int) (domain.Template, error)
}

// ExportService writes the plan in interchange formats.
type ExportService interface {
	WriteCSV(w io.Writer) (*ExportResult, error)
	WriteICS(w io.Writer, week, year int) (*ExportResult, error)
}

// BackupService writes and restores JSON backups.
type BackupService interface {
	Backup(w io.Writer) error
	Restore(ctx context.Context, r io.Reader) error
}

// AnalyticsService summarises the plan.
type AnalyticsService interface {
	WeeklySummary() WeeklySummary
}

// ReminderService computes upcoming reminders.
type ReminderService interface {
	Upcoming() []Reminder
}

// CalendarService resolves week navigation.
type CalendarService interface {
	CurrentWeek() WeekInfo
	Week(week, year int) WeekInfo
	WeekOf(date time.Time) WeekInfo
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	ScheduleService  ScheduleService
	LedgerService    LedgerService
	HabitService     HabitService
	JournalService   JournalService
	TemplateService  TemplateService
	ExportService    ExportService
	BackupService    BackupService
	AnalyticsService AnalyticsService
	ReminderService  ReminderService
	CalendarService  CalendarService
}
