package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"weekplan/internal/calendar"
	"weekplan/internal/errors"
	"weekplan/internal/services"
	"weekplan/internal/ui"
)

// stdoutPath makes export and backup write to the command output.
const stdoutPath = "-"

// OutputCommand handles export csv|ics
type OutputCommand struct {
	app    *App
	Output string
	Week   int
	Year   int
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app}
}

// Execute runs the export command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "export", "usage: wp export csv|ics")
	}

	var buf bytes.Buffer
	var result *services.ExportResult
	var err error

	switch args[0] {
	case "csv":
		result, err = c.app.businessAPI.ExportCSV(ctx, &buf)
	case "ics":
		week, year := c.Week, c.Year
		if week == 0 || year == 0 {
			info, werr := c.app.businessAPI.ResolveWeek(ctx, "", 0)
			if werr != nil {
				return c.app.errors.Handle("export calendar", werr)
			}
			if week == 0 {
				week = info.Week
			}
			if year == 0 {
				year = info.Year
			}
		}
		result, err = c.app.businessAPI.ExportICS(ctx, &buf, week, year)
	default:
		return errors.NewInvalidInputError("format", args[0], "unsupported format")
	}
	if err != nil {
		return c.app.errors.Handle("export "+args[0], err)
	}

	path, err := c.app.writeOutput(c.Output, result.Filename, buf.Bytes())
	if err != nil {
		return c.app.errors.Handle("export "+args[0], err)
	}
	if path != "" {
		c.app.printf("%s Exported %d items to %s\n", ui.Good.Render("✓"), result.Items, path)
		if result.Skipped > 0 {
			c.app.printf("%s %d items without a fixed time were left out\n", ui.Warn.Render(ui.IconWarn), result.Skipped)
		}
	}
	return nil
}

// writeOutput writes data to target, or to the export directory under
// filename when target is empty. It returns "" when data went to the command output.
func (a *App) writeOutput(target, filename string, data []byte) (string, error) {
	if target == stdoutPath {
		_, err := a.out.Write(data)
		return "", err
	}

	path := target
	if path == "" {
		path = filepath.Join(a.config.Export.Dir, filename)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.WrapError(err, errors.ErrorTypePermission, fmt.Sprintf("cannot write %s", path))
	}
	return path, nil
}

// BackupCommand writes the JSON backup file.
type BackupCommand struct {
	app    *App
	Output string
}

func NewBackupCommand(app *App) *BackupCommand {
	return &BackupCommand{app: app}
}

func (c *BackupCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "backup", "usage: wp backup [--output file]")
	}

	var buf bytes.Buffer
	if err := c.app.businessAPI.Backup(ctx, &buf); err != nil {
		return c.app.errors.Handle("create backup", err)
	}

	filename := fmt.Sprintf("weekplan-backup-%s.json", calendar.DateKey(timeNow()))
	path, err := c.app.writeOutput(c.Output, filename, buf.Bytes())
	if err != nil {
		return c.app.errors.Handle("create backup", err)
	}
	if path != "" {
		c.app.printf("%s Backup written to %s\n", ui.Good.Render("✓"), path)
	}
	return nil
}

// RestoreCommand replaces the plan with a backup file. A rejected file changes nothing.
type RestoreCommand struct {
	app *App
}

func NewRestoreCommand(app *App) *RestoreCommand {
	return &RestoreCommand{app: app}
}

func (c *RestoreCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "restore", "usage: wp restore <file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return c.app.errors.Handle("restore backup", errors.NewNotFoundError("backup file", args[0]))
	}
	defer f.Close()

	if err := c.app.businessAPI.Restore(ctx, f); err != nil {
		return c.app.errors.Handle("restore backup", err)
	}
	c.app.printf("%s Restored from %s\n", ui.Good.Render("✓"), args[0])
	return nil
}
