package cli

import (
	"context"
	"fmt"

	"weekplan/internal/api"
	"weekplan/internal/errors"
	"weekplan/internal/ui"
)

// ListCommand prints one day of the plan with completion marks.
type ListCommand struct {
	app  *App
	Date string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command. With no day argument the weekday of Date
// (today when empty) is listed.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", "list", "usage: wp list [day]")
	}

	date := c.Date
	if date == "" {
		date = c.app.businessAPI.Today()
	}
	day := weekdayOf(date)
	if len(args) == 1 {
		var err error
		if day, err = parseDay(args[0]); err != nil {
			return c.app.errors.HandleSimple(err)
		}
	}

	plan, err := c.app.businessAPI.GetDayPlan(ctx, day, date)
	if err != nil {
		return c.app.errors.Handle("list schedule", err)
	}
	c.printDay(plan)
	return nil
}

func (c *ListCommand) printDay(plan *api.DayPlan) {
	c.app.println(ui.Heading(ui.IconCalendar, fmt.Sprintf("%s  %s", plan.Day.Title(), ui.Muted.Render(plan.Date))))
	if len(plan.Items) == 0 {
		c.app.println(ui.Muted.Render("  Nothing planned"))
		return
	}
	for _, planned := range plan.Items {
		item := planned.Item
		c.app.printf("  %s %s  %-30s %s  %s\n",
			ui.Check(planned.Completed),
			describeTime(item),
			item.Activity,
			ui.CategoryTag(item.Category),
			ui.Muted.Render(item.ID))
		if item.Notes != "" {
			c.app.printf("      %s\n", ui.Muted.Render(item.Notes))
		}
	}
	c.app.printf("  %s\n", ui.LabelValue("Done", fmt.Sprintf("%d/%d", plan.Done, len(plan.Items))))
}

// WeekCommand shows the ISO week around a date and per-day completion.
type WeekCommand struct {
	app    *App
	Date   string
	Offset int
}

func NewWeekCommand(app *App) *WeekCommand {
	return &WeekCommand{app: app}
}

func (c *WeekCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "week", "usage: wp week [--date YYYY-MM-DD] [--offset N]")
	}

	info, err := c.app.businessAPI.ResolveWeek(ctx, c.Date, c.Offset)
	if err != nil {
		return c.app.errors.Handle("resolve week", err)
	}
	plan, err := c.app.businessAPI.GetWeekPlan(ctx, info.Week, info.Year)
	if err != nil {
		return c.app.errors.Handle("load week", err)
	}

	c.app.println(ui.Heading(ui.IconCalendar, fmt.Sprintf("Week %d, %d", plan.Week.Week, plan.Week.Year)))
	c.app.printf("  %s\n", ui.LabelValue("Monday", plan.Week.Monday.Format("Mon 2 Jan 2006")))
	for _, day := range plan.Days {
		c.app.printf("  %-10s %s  %d/%d done\n", day.Day.Title(), day.Date, day.Done, len(day.Items))
	}
	return nil
}
