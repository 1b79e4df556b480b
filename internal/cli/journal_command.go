package cli

import (
	"context"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/ui"
)

// JournalCommand dispatches journal set|show.
type JournalCommand struct {
	app  *App
	Date string
	All  bool
}

func NewJournalCommand(app *App) *JournalCommand {
	return &JournalCommand{app: app}
}

const journalUsage = "usage: wp journal set <great|good|neutral|bad|awful> [note] | show [--all]"

func (c *JournalCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "journal", journalUsage)
	}

	switch args[0] {
	case "set":
		if len(args) < 2 {
			return errors.NewInvalidInputError("command", "journal set", journalUsage)
		}
		entry, err := c.app.businessAPI.SaveJournalEntry(ctx, c.Date, args[1], joinArgs(args[2:]))
		if err != nil {
			return c.app.errors.Handle("save journal entry", err)
		}
		c.app.printf("%s Saved %s for %s\n", ui.IconBook, entry.Mood, entry.Date)
		return nil
	case "show":
		return c.show(ctx)
	default:
		return errors.NewInvalidInputError("command", "journal "+args[0], journalUsage)
	}
}

func (c *JournalCommand) show(ctx context.Context) error {
	if c.All {
		entries, err := c.app.businessAPI.ListJournalEntries(ctx)
		if err != nil {
			return c.app.errors.Handle("list journal", err)
		}
		if len(entries) == 0 {
			c.app.println(ui.Muted.Render("No journal entries"))
		}
		for _, entry := range entries {
			c.printEntry(entry)
		}
		return nil
	}

	entry, err := c.app.businessAPI.GetJournalEntry(ctx, c.Date)
	if err != nil {
		return c.app.errors.Handle("show journal entry", err)
	}
	c.printEntry(*entry)
	return nil
}

func (c *JournalCommand) printEntry(entry domain.JournalEntry) {
	c.app.printf("%s  %-8s %s\n", entry.Date, entry.Mood, entry.Note)
}
