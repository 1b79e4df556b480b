package services

import (
	"io"

	"weekplan/internal/calendar"
	"weekplan/internal/config"
	"weekplan/internal/errors"
	"weekplan/internal/export"
	"weekplan/internal/logging"
	"weekplan/internal/store"
)

type exportServiceImpl struct {
	store *store.Store
	cfg   *config.Config
	now   Clock
}

func NewExportService(s *store.Store, cfg *config.Config, now Clock) ExportService {
	return &exportServiceImpl{store: s, cfg: cfg, now: now}
}

func (e *exportServiceImpl) WriteCSV(w io.Writer) (*ExportResult, error) {
	schedule := e.store.Schedule()
	if err := export.WriteCSV(w, schedule); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypePermission, "write CSV export")
	}
	return &ExportResult{
		Filename:    export.CSVFilename(e.now()),
		ContentType: export.CSVContentType,
		Items:       schedule.Count(),
	}, nil
}

// WriteICS anchors the plan to the given ISO week. The week is clamped to [1,53].
func (e *exportServiceImpl) WriteICS(w io.Writer, week, year int) (*ExportResult, error) {
	week = calendar.ClampWeek(week)
	schedule := e.store.Schedule()
	opts := export.ICSOptions{
		ProductID: e.cfg.Export.ProductID,
		UIDDomain: e.cfg.Export.UIDDomain,
		Location:  e.cfg.Location(),
		Stamp:     e.now(),
	}

	skipped, err := export.RenderICS(w, schedule, calendar.StartOfWeek(week, year), opts)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypePermission, "write ICS export")
	}
	if skipped > 0 {
		logging.Debugf("export: %d items without a fixed time were left out\n", skipped)
	}
	return &ExportResult{
		Filename:    export.ICSFilename,
		ContentType: export.ICSContentType,
		Items:       schedule.Count() - skipped,
		Skipped:     skipped,
	}, nil
}
