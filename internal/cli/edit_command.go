package cli

import (
	"context"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/services"
	"weekplan/internal/ui"
)

// EditCommand changes the given fields of an item and keeps the rest.
type EditCommand struct {
	app   *App
	Flags ItemFlags
}

func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "edit", "usage: wp edit <day> <id> [--time ...] [--activity ...]")
	}
	day, err := parseDay(args[0])
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	plan, err := c.app.businessAPI.GetDayPlan(ctx, day, "")
	if err != nil {
		return c.app.errors.Handle("edit item", err)
	}
	var current *domain.ScheduleItem
	for i := range plan.Items {
		if plan.Items[i].Item.ID == args[1] {
			current = &plan.Items[i].Item
			break
		}
	}
	if current == nil {
		return c.app.errors.Handle("edit item", errors.NewNotFoundError("schedule item", args[1]))
	}

	item, err := c.app.businessAPI.UpdateItem(ctx, day, current.ID, merge(*current, c.Flags))
	if err != nil {
		return c.app.errors.Handle("edit item", err)
	}
	c.app.printf("%s Updated %s on %s at %s\n", ui.Good.Render("~"), item.Activity, day.Title(), item.Time)
	return nil
}

func merge(item domain.ScheduleItem, f ItemFlags) services.ItemInput {
	input := services.ItemInput{
		Time:              item.Time,
		Duration:          item.Duration,
		Category:          item.Category,
		Activity:          item.Activity,
		Notes:             item.Notes,
		Recurrence:        item.Recurrence,
		RecurrenceEndDate: item.RecurrenceEndDate,
	}
	if f.Time != "" {
		input.Time = f.Time
	}
	if f.Duration != "" {
		input.Duration = f.Duration
	}
	if f.Category != "" {
		input.Category = domain.Category(f.Category)
	}
	if f.Activity != "" {
		input.Activity = f.Activity
	}
	if f.Notes != "" {
		input.Notes = f.Notes
	}
	if f.Recurrence != "" {
		input.Recurrence = domain.Recurrence(f.Recurrence)
	}
	if f.Until != "" {
		input.RecurrenceEndDate = f.Until
	}
	return input
}
