package cli

import (
	"context"
	"fmt"

	"weekplan/internal/errors"
	"weekplan/internal/ui"
)

// DoneCommand toggles completion of a schedule item.
type DoneCommand struct {
	app  *App
	Date string
}

func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "done", "usage: wp done <id> [--date YYYY-MM-DD]")
	}

	result, err := c.app.businessAPI.ToggleItem(ctx, args[0], c.Date)
	if err != nil {
		return c.app.errors.Handle("toggle item", err)
	}

	if result.Completed {
		c.app.printf("%s %s done on %s  %s\n", ui.IconDone, result.ItemID, result.Date, ui.Good.Render(fmt.Sprintf("%+d XP", result.XPDelta)))
	} else {
		c.app.printf("%s %s reopened on %s  %s\n", ui.IconOpen, result.ItemID, result.Date, ui.Warn.Render(fmt.Sprintf("%+d XP", result.XPDelta)))
	}
	if result.LeveledUp {
		c.app.printf("%s %s You reached level %d\n", ui.IconTrophy, ui.BadgeLevelUp, result.Stats.Level)
	}
	c.app.printf("%s  %s  %s\n",
		ui.LabelValue("Level", result.Stats.Level),
		ui.LabelValue("XP", fmt.Sprintf("%d/%d", result.Stats.XP, result.Stats.NextLevelXP())),
		ui.LabelValue("Streak", result.Stats.Streak))
	return nil
}

// StatsCommand prints the dashboard: level, streak, today's progress and mood.
type StatsCommand struct {
	app  *App
	Date string
}

func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "stats", "usage: wp stats")
	}

	d, err := c.app.businessAPI.GetDashboard(ctx, c.Date)
	if err != nil {
		return c.app.errors.Handle("load stats", err)
	}

	stats := d.Stats
	lines := []string{
		ui.Heading(ui.IconTrophy, "Progress "+d.Date),
		ui.LabelValue("Level", stats.Level),
		ui.LabelValue("XP", fmt.Sprintf("%d/%d %s", stats.XP, stats.NextLevelXP(),
			ui.Bar(float64(stats.XP)/float64(stats.NextLevelXP())*100, 20))),
		ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFire, stats.Streak)),
		ui.LabelValue("Completed today", d.CompletedOn),
		ui.LabelValue("Habits", fmt.Sprintf("%d/%d (%d%%)", d.Habits.Done, len(d.Habits.Habits), d.Habits.Percent)),
		ui.LabelValue("Planned this week", d.Summary.Total),
	}
	if d.Journal != nil {
		lines = append(lines, ui.LabelValue("Mood", d.Journal.Mood))
	}
	for _, line := range lines {
		c.app.println(line)
	}
	return nil
}
