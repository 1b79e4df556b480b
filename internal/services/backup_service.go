package services

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/store"
)

// BackupVersion is the only backup format understood by Restore.
const BackupVersion = 1

// Backup is the JSON backup file layout.
type Backup struct {
	Version   int               `json:"version"`
	Timestamp string            `json:"timestamp"`
	Schedule  domain.Schedule   `json:"schedule"`
	Templates []domain.Template `json:"templates"`
	Habits    []domain.Habit    `json:"habits"`
	HabitLogs domain.DateLog    `json:"habitLogs"`
}

// rawBackup keeps fields undecoded so presence can be checked before anything is applied.
type rawBackup struct {
	Version   *int            `json:"version"`
	Schedule  json.RawMessage `json:"schedule"`
	Templates json.RawMessage `json:"templates"`
	Habits    json.RawMessage `json:"habits"`
	HabitLogs json.RawMessage `json:"habitLogs"`
}

type backupServiceImpl struct {
	store *store.Store
	now   Clock
}

func NewBackupService(s *store.Store, now Clock) BackupService {
	return &backupServiceImpl{store: s, now: now}
}

func (b *backupServiceImpl) Backup(w io.Writer) error {
	backup := Backup{
		Version:   BackupVersion,
		Timestamp: b.now().UTC().Format(time.RFC3339),
		Schedule:  b.store.Schedule(),
		Templates: b.store.Templates(),
		Habits:    b.store.Habits(),
		HabitLogs: b.store.HabitLogs(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return errors.WrapError(err, errors.ErrorTypePermission, "write backup")
	}
	return nil
}

// Restore validates the whole file first. Schedule and templates are required;
// habits and habit logs replace current values only when present.
func (b *backupServiceImpl) Restore(ctx context.Context, r io.Reader) error {
	var raw rawBackup
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return errors.NewInvalidBackupError("not a JSON backup", err)
	}
	if raw.Version != nil && *raw.Version != BackupVersion {
		return errors.NewInvalidBackupError("unsupported version", nil).WithContext("version", *raw.Version)
	}
	if !present(raw.Schedule) {
		return errors.NewInvalidBackupError("missing schedule", nil)
	}
	if !present(raw.Templates) {
		return errors.NewInvalidBackupError("missing templates", nil)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(raw.Schedule, &snap.Schedule); err != nil {
		return errors.NewInvalidBackupError("malformed schedule", err)
	}
	for day := range snap.Schedule {
		if !day.IsValid() {
			return errors.NewInvalidBackupError("unknown day "+string(day), nil)
		}
	}
	if err := json.Unmarshal(raw.Templates, &snap.Templates); err != nil {
		return errors.NewInvalidBackupError("malformed templates", err)
	}
	if snap.Templates == nil {
		snap.Templates = []domain.Template{}
	}
	if present(raw.Habits) {
		if err := json.Unmarshal(raw.Habits, &snap.Habits); err != nil {
			return errors.NewInvalidBackupError("malformed habits", err)
		}
		if snap.Habits == nil {
			snap.Habits = []domain.Habit{}
		}
	}
	if present(raw.HabitLogs) {
		if err := json.Unmarshal(raw.HabitLogs, &snap.HabitLogs); err != nil {
			return errors.NewInvalidBackupError("malformed habit logs", err)
		}
		if snap.HabitLogs == nil {
			snap.HabitLogs = domain.DateLog{}
		}
	}

	return b.store.Replace(ctx, snap)
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
