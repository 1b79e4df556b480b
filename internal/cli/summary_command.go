package cli

import (
	"context"

	"weekplan/internal/errors"
	"weekplan/internal/ui"
)

// SummaryCommand prints planned time per category for the week.
type SummaryCommand struct {
	app *App
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app}
}

func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "summary", "usage: wp summary")
	}

	summary, err := c.app.businessAPI.GetWeeklySummary(ctx)
	if err != nil {
		return c.app.errors.Handle("summarise week", err)
	}

	c.app.println(ui.Heading(ui.IconChart, "Planned time this week"))
	for _, ct := range summary.Categories {
		c.app.printf("  %-12s %7s %s %5.1f%%\n", ct.Category, ct.Duration, ui.Bar(ct.Percent, 20), ct.Percent)
	}
	c.app.printf("  %s\n", ui.LabelValue("Total", summary.Total))
	return nil
}

// RemindCommand lists upcoming reminders.
type RemindCommand struct {
	app *App
}

func NewRemindCommand(app *App) *RemindCommand {
	return &RemindCommand{app: app}
}

func (c *RemindCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "remind", "usage: wp remind")
	}

	reminders, err := c.app.businessAPI.GetUpcomingReminders(ctx)
	if err != nil {
		return c.app.errors.Handle("list reminders", err)
	}
	if len(reminders) == 0 {
		c.app.println(ui.Muted.Render("No upcoming reminders"))
		return nil
	}

	layout := c.app.config.Time.DisplayFormat
	loc := c.app.config.Location()
	for _, r := range reminders {
		c.app.printf("%s %s  %s\n", ui.IconBell, r.At.In(loc).Format(layout), ui.H2.Render(r.Title))
		c.app.printf("   %s\n", r.Body)
	}
	return nil
}
