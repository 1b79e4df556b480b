package cli

import (
	"context"

	"weekplan/internal/domain"
	"weekplan/internal/errors"
	"weekplan/internal/ui"
)

// TemplateCommand dispatches template list|add.
type TemplateCommand struct {
	app   *App
	Flags ItemFlags
}

func NewTemplateCommand(app *App) *TemplateCommand {
	return &TemplateCommand{app: app}
}

const templateUsage = "usage: wp template list | add --category <c> [--duration d] <activity>"

func (c *TemplateCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "template", templateUsage)
	}

	switch args[0] {
	case "list":
		templates, err := c.app.businessAPI.ListTemplates(ctx)
		if err != nil {
			return c.app.errors.Handle("list templates", err)
		}
		for i, tpl := range templates {
			c.app.printf("%2d. %-25s %s  %s\n", i+1, tpl.Activity, ui.CategoryTag(tpl.Category), ui.Muted.Render(tpl.Duration))
		}
		return nil
	case "add":
		activity := c.Flags.Activity
		if activity == "" {
			activity = joinArgs(args[1:])
		}
		tpl := domain.Template{
			Category: domain.Category(c.Flags.Category),
			Activity: activity,
			Time:     c.Flags.Time,
			Duration: c.Flags.Duration,
			Notes:    c.Flags.Notes,
		}
		if err := c.app.businessAPI.AddTemplate(ctx, tpl); err != nil {
			return c.app.errors.Handle("add template", err)
		}
		c.app.printf("%s Added template %s\n", ui.Good.Render("+"), activity)
		return nil
	default:
		return errors.NewInvalidInputError("command", "template "+args[0], templateUsage)
	}
}
