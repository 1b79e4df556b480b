package cli

import (
	"context"
	"fmt"

	"weekplan/internal/errors"
	"weekplan/internal/ui"
)

// HabitCommand dispatches habit add|delete|toggle|list.
type HabitCommand struct {
	app      *App
	Category string
	Date     string
}

func NewHabitCommand(app *App) *HabitCommand {
	return &HabitCommand{app: app}
}

const habitUsage = "usage: wp habit add <title> | delete <id> | toggle <id> | list"

func (c *HabitCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "habit", habitUsage)
	}

	switch args[0] {
	case "add":
		return c.add(ctx, joinArgs(args[1:]))
	case "delete":
		if len(args) != 2 {
			return errors.NewInvalidInputError("command", "habit delete", habitUsage)
		}
		if err := c.app.businessAPI.DeleteHabit(ctx, args[1]); err != nil {
			return c.app.errors.Handle("delete habit", err)
		}
		c.app.printf("Deleted habit %s\n", args[1])
		return nil
	case "toggle":
		if len(args) != 2 {
			return errors.NewInvalidInputError("command", "habit toggle", habitUsage)
		}
		done, err := c.app.businessAPI.ToggleHabit(ctx, args[1], c.Date)
		if err != nil {
			return c.app.errors.Handle("toggle habit", err)
		}
		c.app.printf("%s %s\n", ui.Check(done), args[1])
		return nil
	case "list":
		return c.list(ctx)
	default:
		return errors.NewInvalidInputError("command", "habit "+args[0], habitUsage)
	}
}

func (c *HabitCommand) add(ctx context.Context, title string) error {
	habit, err := c.app.businessAPI.AddHabit(ctx, title, c.Category)
	if err != nil {
		return c.app.errors.Handle("add habit", err)
	}
	c.app.printf("%s Added habit %s %s\n", ui.Good.Render("+"), habit.Title, ui.Muted.Render("("+habit.ID+")"))
	return nil
}

func (c *HabitCommand) list(ctx context.Context) error {
	progress, err := c.app.businessAPI.GetHabitProgress(ctx, c.Date)
	if err != nil {
		return c.app.errors.Handle("list habits", err)
	}

	c.app.println(ui.Heading(ui.IconDone, "Habits "+progress.Date))
	if len(progress.Habits) == 0 {
		c.app.println(ui.Muted.Render("  No habits yet"))
		return nil
	}
	for _, habit := range progress.Habits {
		c.app.printf("  %s %-30s %s  %s\n", ui.Check(progress.Completed[habit.ID]), habit.Title,
			ui.Muted.Render(habit.Category), ui.Muted.Render(habit.ID))
	}
	c.app.printf("  %s %s\n", ui.Bar(float64(progress.Percent), 20), fmt.Sprintf("%d%%", progress.Percent))
	return nil
}
