package cli

import (
	"context"

	"weekplan/internal/errors"
	"weekplan/internal/ui"
)

// DeleteCommand removes one item from a day.
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "delete", "usage: wp delete <day> <id>")
	}
	day, err := parseDay(args[0])
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	if err := c.app.businessAPI.DeleteItem(ctx, day, args[1]); err != nil {
		return c.app.errors.Handle("delete item", err)
	}
	c.app.printf("%s Deleted %s from %s\n", ui.Bad.Render("-"), args[1], day.Title())
	return nil
}

// ResetCommand restores the default weekly plan.
type ResetCommand struct {
	app *App
}

func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{app: app}
}

func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "reset", "usage: wp reset")
	}
	if err := c.app.businessAPI.ResetSchedule(ctx); err != nil {
		return c.app.errors.Handle("reset schedule", err)
	}
	c.app.println("Schedule reset to the default plan")
	return nil
}
