package cli

import (
	"context"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/services"
	"weekplan/internal/ui"
)

// ItemFlags are the item fields settable from the command line.
type ItemFlags struct {
	Time       string
	Duration   string
	Category   string
	Activity   string
	Notes      string
	Recurrence string
	Until      string
}

func (f ItemFlags) input() services.ItemInput {
	return services.ItemInput{
		Time:              f.Time,
		Duration:          f.Duration,
		Category:          domain.Category(f.Category),
		Activity:          f.Activity,
		Notes:             f.Notes,
		Recurrence:        domain.Recurrence(f.Recurrence),
		RecurrenceEndDate: f.Until,
	}
}

// AddCommand adds an item to a day, optionally starting from a template.
type AddCommand struct {
	app      *App
	Flags    ItemFlags
	Template int // 1-based; 0 means none
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: wp add <day> --time 9:00-10:00 --category gym [activity]")
	}
	day, err := parseDay(args[0])
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	input := c.Flags.input()
	if input.Activity == "" {
		input.Activity = joinArgs(args[1:])
	}

	var item *domain.ScheduleItem
	if c.Template > 0 {
		item, err = c.app.businessAPI.AddItemFromTemplate(ctx, day, c.Template-1, input)
	} else {
		item, err = c.app.businessAPI.AddItem(ctx, day, input)
	}
	if err != nil {
		return c.app.errors.Handle("add item", err)
	}

	c.app.printf("%s Added %s on %s at %s %s\n", ui.Good.Render("+"), item.Activity, day.Title(), item.Time, ui.Muted.Render("("+item.ID+")"))
	return nil
}
