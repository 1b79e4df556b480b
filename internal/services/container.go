package services

import (
	"time"

	"weekplan/internal/config"
	"weekplan/internal/store"
	"weekplan/internal/validation"
)

// NewServiceContainer wires every service over one store.
func NewServiceContainer(s *store.Store, cfg *config.Config, now Clock) *ServiceContainer {
	if now == nil {
		now = time.Now
	}
	v := validation.NewValidatorWithConfig(cfg)

	return &ServiceContainer{
		ScheduleService:  NewScheduleService(s, v),
		LedgerService:    NewLedgerService(s, now),
		HabitService:     NewHabitService(s, v),
		JournalService:   NewJournalService(s, v),
		TemplateService:  NewTemplateService(s, v),
		ExportService:    NewExportService(s, cfg, now),
		BackupService:    NewBackupService(s, now),
		AnalyticsService: NewAnalyticsService(s),
		ReminderService:  NewReminderService(s, cfg, now),
		CalendarService:  NewCalendarService(cfg, now),
	}
}
