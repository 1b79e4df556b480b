package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"weekplan/internal/api"
	"weekplan/internal/config"
	"weekplan/internal/logging"
)

// Command is implemented by every command handler.
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// Opener builds the BusinessAPI once configuration is final. The returned
// func releases what the API holds open.
type Opener func(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	open   Opener
	app    *App
	config *config.Config
	closer func() error
	out    io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(open Opener) *RootCommand {
	root := &RootCommand{
		open: open,
		out:  os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "wp",
		Short: "A weekly planner with habits, journal and streaks",
		Long: `Weekplan (wp) keeps a recurring weekly plan and tracks what you actually do.

FEATURES:
  • Seven-day plan with conflict checking for fixed time ranges
  • Completion marks that earn XP, levels and a daily streak
  • Habits with daily progress and a mood journal
  • CSV and iCalendar export, JSON backup and restore

EXAMPLES:
  wp list                                  # Today's plan
  wp list tue                              # Tuesday's plan
  wp add mon --time 6:00-7:00 --category gym Run
  wp add sat --template 1 --time Morning   # Start from the first template
  wp done mon-1                            # Mark an item done today
  wp export ics --week 12                  # Calendar for ISO week 12
  wp habit add "Read 20 pages"
  wp journal set good "Solid day"

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Config file: $WP_CONFIG or ~/.weekplan/config.toml

  Database Configuration:
    WP_DB_DIR                              Database directory (default: ~/.weekplan)
    WP_DB_FILENAME                         Database filename (default: weekplan.db)
    WP_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    WP_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Time Configuration:
    WP_TIME_DISPLAY_FORMAT                 Time format (default: 2006-01-02 15:04)
    WP_TIMEZONE                            Zone of the plan's wall-clock times (default: UTC)

  Export and Reminders:
    WP_EXPORT_DIR                          Export directory (default: .)
    WP_REMINDER_LEAD                       Reminder lead time (default: 10m)
    WP_REMINDER_DAYS                       Days of reminders to list (default: 7)

  Application Configuration:
    WP_APP_TIMEOUT                         Application timeout (default: 60s)
    WP_APP_VERBOSE                         Enable verbose output (default: false)
    WP_DEBUG                               Print debug output
    WP_ENV                                 development, testing or production`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetOutput redirects command output.
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
	r.cmd.SetOut(w)
}

// SetArgs overrides os.Args, mainly for tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command and releases the API afterwards.
func (r *RootCommand) Execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if r.closer != nil {
		if cerr := r.closer(); cerr != nil {
			logging.Warnf("closing database: %v\n", cerr)
		}
		r.closer = nil
	}
	return NewErrorHandler().HandleSimple(err)
}

// Config returns the configuration the last command ran with.
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides WP_CONFIG)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides WP_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WP_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WP_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides WP_DB_WRITE_TIMEOUT)")

	// Time configuration
	flags.String("time-format", "", "Time display format (overrides WP_TIME_DISPLAY_FORMAT)")
	flags.String("timezone", "", "Zone of the plan's wall-clock times (overrides WP_TIMEZONE)")

	// Export and reminders
	flags.String("export-dir", "", "Export directory (overrides WP_EXPORT_DIR)")
	flags.Duration("reminder-lead", 0, "Reminder lead time (overrides WP_REMINDER_LEAD)")
	flags.Int("reminder-days", 0, "Days of reminders to list (overrides WP_REMINDER_DAYS)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides WP_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides WP_APP_VERBOSE)")
}

// setup loads configuration with flag overrides and opens the API.
func (r *RootCommand) setup(ctx context.Context) error {
	overrides, err := r.getOverridesFromFlags()
	if err != nil {
		return err
	}

	path, _ := r.cmd.PersistentFlags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.NewLoaderWithFile(path).LoadWithOverrides(overrides)
	if err != nil {
		return err
	}
	logging.EnableDebug(cfg.Application.Verbose)

	businessAPI, closer, err := r.open(ctx, cfg)
	if err != nil {
		return err
	}

	r.config = cfg
	r.closer = closer
	r.app = NewAppWithConfig(businessAPI, cfg).WithOutput(r.out)
	return nil
}

// getOverridesFromFlags collects the global flags the user actually set.
func (r *RootCommand) getOverridesFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	o := &config.ConfigOverrides{}

	str := func(name string, dst **string) {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*dst = &v
		}
	}
	dur := func(name string, dst **time.Duration) {
		if flags.Changed(name) {
			v, _ := flags.GetDuration(name)
			*dst = &v
		}
	}

	str("db-dir", &o.DBDir)
	str("db-filename", &o.DBFilename)
	dur("db-query-timeout", &o.DBQueryTimeout)
	dur("db-write-timeout", &o.DBWriteTimeout)
	str("time-format", &o.TimeFormat)
	str("timezone", &o.Timezone)
	str("export-dir", &o.ExportDir)
	dur("reminder-lead", &o.ReminderLead)
	dur("app-timeout", &o.Timeout)

	if flags.Changed("reminder-days") {
		v, err := flags.GetInt("reminder-days")
		if err != nil {
			return nil, fmt.Errorf("invalid --reminder-days: %w", err)
		}
		o.ReminderDays = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		o.Verbose = &v
	}
	return o, nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// run wraps a handler constructor as a cobra RunE with the application timeout.
func (r *RootCommand) run(build func(app *App) Command) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
		defer cancel()
		return build(r.app).Execute(ctx, args)
	}
}

func bindItemFlags(cmd *cobra.Command, f *ItemFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.Time, "time", "", `Time range such as 9:00-10:30, or a label such as Morning`)
	flags.StringVar(&f.Duration, "duration", "", "Duration such as 1h30m")
	flags.StringVar(&f.Category, "category", "", "Category: anchor, school, gym, deepwork, maintenance, recovery, transition, personal, social, church, planning")
	flags.StringVar(&f.Activity, "activity", "", "Activity name")
	flags.StringVar(&f.Notes, "notes", "", "Notes")
	flags.StringVar(&f.Recurrence, "recurrence", "", "Calendar recurrence: none, daily, weekly, monthly")
	flags.StringVar(&f.Until, "until", "", "Last date of the recurrence (YYYY-MM-DD)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var listDate string
	listCmd := &cobra.Command{
		Use:   "list [day]",
		Short: "Show the plan for a day",
		Long: `Show one day of the plan with completion marks.

Without a day, today's weekday is shown. Days may be full or three-letter names.

Examples:
  wp list
  wp list fri
  wp list --date 2025-01-06`,
		Args: cobra.MaximumNArgs(1),
		RunE: r.run(func(app *App) Command {
			c := NewListCommand(app)
			c.Date = listDate
			return c
		}),
	}
	listCmd.Flags().StringVar(&listDate, "date", "", "Date whose completions to show (YYYY-MM-DD)")

	var weekDate string
	var weekOffset int
	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Show the ISO week and its progress",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) Command {
			c := NewWeekCommand(app)
			c.Date, c.Offset = weekDate, weekOffset
			return c
		}),
	}
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Any date in the week (YYYY-MM-DD)")
	weekCmd.Flags().IntVar(&weekOffset, "offset", 0, "Weeks to move forward (negative for back)")

	var addFlags ItemFlags
	var addTemplate int
	addCmd := &cobra.Command{
		Use:   "add <day> [activity]",
		Short: "Add an item to a day",
		Long: `Add an item to a day. Fixed time ranges may not overlap other fixed ranges on the same day;
labels such as Morning are never checked.

Examples:
  wp add mon --time 6:00-7:00 --duration 1h --category gym Run
  wp add sun --template 2 --time 10:00-12:00`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App) Command {
			c := NewAddCommand(app)
			c.Flags, c.Template = addFlags, addTemplate
			return c
		}),
	}
	bindItemFlags(addCmd, &addFlags)
	addCmd.Flags().IntVar(&addTemplate, "template", 0, "Start from template number N (see wp template list)")

	var editFlags ItemFlags
	editCmd := &cobra.Command{
		Use:   "edit <day> <id>",
		Short: "Change fields of an item",
		Args:  cobra.ExactArgs(2),
		RunE: r.run(func(app *App) Command {
			c := NewEditCommand(app)
			c.Flags = editFlags
			return c
		}),
	}
	bindItemFlags(editCmd, &editFlags)

	deleteCmd := &cobra.Command{
		Use:   "delete <day> <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(2),
		RunE:  r.run(func(app *App) Command { return NewDeleteCommand(app) }),
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default weekly plan",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) Command { return NewResetCommand(app) }),
	}

	var doneDate string
	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle completion of an item",
		Long:  "Mark an item done (+10 XP) or, when already done on that date, undo it (-10 XP).",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App) Command {
			c := NewDoneCommand(app)
			c.Date = doneDate
			return c
		}),
	}
	doneCmd.Flags().StringVar(&doneDate, "date", "", "Date of the completion (YYYY-MM-DD, default today)")

	var statsDate string
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show level, XP, streak and today's progress",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) Command {
			c := NewStatsCommand(app)
			c.Date = statsDate
			return c
		}),
	}
	statsCmd.Flags().StringVar(&statsDate, "date", "", "Day to report (YYYY-MM-DD, default today)")

	var habitCategory, habitDate string
	habitCmd := &cobra.Command{
		Use:   "habit add|delete|toggle|list",
		Short: "Manage daily habits",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App) Command {
			c := NewHabitCommand(app)
			c.Category, c.Date = habitCategory, habitDate
			return c
		}),
	}
	habitCmd.Flags().StringVar(&habitCategory, "category", "", "Habit category (default health)")
	habitCmd.Flags().StringVar(&habitDate, "date", "", "Date to toggle or list (YYYY-MM-DD, default today)")

	var journalDate string
	var journalAll bool
	journalCmd := &cobra.Command{
		Use:   "journal set|show",
		Short: "Record or show the mood journal",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App) Command {
			c := NewJournalCommand(app)
			c.Date, c.All = journalDate, journalAll
			return c
		}),
	}
	journalCmd.Flags().StringVar(&journalDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	journalCmd.Flags().BoolVar(&journalAll, "all", false, "Show every entry, newest first")

	var templateFlags ItemFlags
	templateCmd := &cobra.Command{
		Use:   "template list|add",
		Short: "Manage quick-add templates",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.run(func(app *App) Command {
			c := NewTemplateCommand(app)
			c.Flags = templateFlags
			return c
		}),
	}
	bindItemFlags(templateCmd, &templateFlags)

	var exportOutput string
	var exportWeek, exportYear int
	exportCmd := &cobra.Command{
		Use:   "export csv|ics",
		Short: "Export the plan as CSV or iCalendar",
		Long: `Export the plan.

  csv  one row per item, every cell quoted
  ics  one event per item, anchored to an ISO week (default: the current week).
       Items with labels other than Morning, Midday and Afternoon are left out.

Use --output - to write to standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: r.run(func(app *App) Command {
			c := NewOutputCommand(app)
			c.Output, c.Week, c.Year = exportOutput, exportWeek, exportYear
			return c
		}),
	}
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file, or - for standard output")
	exportCmd.Flags().IntVar(&exportWeek, "week", 0, "ISO week number for ics (clamped to 1-53)")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "ISO year for ics")

	var backupOutput string
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a JSON backup of plan, templates and habits",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) Command {
			c := NewBackupCommand(app)
			c.Output = backupOutput
			return c
		}),
	}
	backupCmd.Flags().StringVarP(&backupOutput, "output", "o", "", "Output file, or - for standard output")

	restoreCmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore a JSON backup",
		Long:  "Restore a backup file. Files without a schedule and templates are rejected and nothing changes.",
		Args:  cobra.ExactArgs(1),
		RunE:  r.run(func(app *App) Command { return NewRestoreCommand(app) }),
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show planned time per category",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) Command { return NewSummaryCommand(app) }),
	}

	remindCmd := &cobra.Command{
		Use:   "remind",
		Short: "List upcoming reminders",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(app *App) Command { return NewRemindCommand(app) }),
	}

	r.cmd.AddCommand(
		listCmd,
		weekCmd,
		addCmd,
		editCmd,
		deleteCmd,
		resetCmd,
		doneCmd,
		statsCmd,
		habitCmd,
		journalCmd,
		templateCmd,
		exportCmd,
		backupCmd,
		restoreCmd,
		summaryCmd,
		remindCmd,
	)
}
