package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"
)

// Config holds all configuration options for the weekly planner
type Config struct {
	Database    DatabaseConfig
	Time        TimeConfig
	Validation  ValidationConfig
	Export      ExportConfig
	Reminders   RemindersConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"WP_DB_DIR"`
	Filename       string        `env:"WP_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"WP_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"WP_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"WP_DB_DIR_PERMISSIONS"`
}

// TimeConfig controls how times are displayed and anchored.
type TimeConfig struct {
	DisplayFormat string `toml:"display_format" env:"WP_TIME_DISPLAY_FORMAT"`
	// Timezone anchors wall-clock schedule times to instants. Date keys stay UTC.
	Timezone string `toml:"timezone" env:"WP_TIMEZONE"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	ActivityMaxLength   int `toml:"activity_max_length" env:"WP_VALIDATION_ACTIVITY_MAX"`
	NotesMaxLength      int `toml:"notes_max_length" env:"WP_VALIDATION_NOTES_MAX"`
	HabitTitleMaxLength int `toml:"habit_title_max_length" env:"WP_VALIDATION_HABIT_TITLE_MAX"`
}

// ExportConfig controls CSV/ICS output.
type ExportConfig struct {
	Dir       string `toml:"dir" env:"WP_EXPORT_DIR"`
	ProductID string `toml:"product_id" env:"WP_EXPORT_PRODUCT_ID"`
	UIDDomain string `toml:"uid_domain" env:"WP_EXPORT_UID_DOMAIN"`
}

// RemindersConfig controls upcoming reminder computation.
type RemindersConfig struct {
	LeadTime    time.Duration `env:"WP_REMINDER_LEAD"`
	HorizonDays int           `env:"WP_REMINDER_DAYS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WP_APP_TIMEOUT"`
	Verbose bool          `env:"WP_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:            filepath.Join(homeDir, ".weekplan"),
			Filename:       "weekplan.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04",
			Timezone:      "UTC",
		},
		Validation: ValidationConfig{
			ActivityMaxLength:   120,
			NotesMaxLength:      1000,
			HabitTitleMaxLength: 120,
		},
		Export: ExportConfig{
			Dir:       ".",
			ProductID: "-//MyScheduleApp//EN",
			UIDDomain: "myschedule.app",
		},
		Reminders: RemindersConfig{
			LeadTime:    10 * time.Minute,
			HorizonDays: 7,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Time.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("WP_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WP_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("WP_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("WP_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("WP_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	if format := os.Getenv("WP_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}
	if tz := os.Getenv("WP_TIMEZONE"); tz != "" {
		c.Time.Timezone = tz
	}

	if n := os.Getenv("WP_VALIDATION_ACTIVITY_MAX"); n != "" {
		c.Validation.ActivityMaxLength = ParseIntWithFallback(n, c.Validation.ActivityMaxLength)
	}
	if n := os.Getenv("WP_VALIDATION_NOTES_MAX"); n != "" {
		c.Validation.NotesMaxLength = ParseIntWithFallback(n, c.Validation.NotesMaxLength)
	}
	if n := os.Getenv("WP_VALIDATION_HABIT_TITLE_MAX"); n != "" {
		c.Validation.HabitTitleMaxLength = ParseIntWithFallback(n, c.Validation.HabitTitleMaxLength)
	}

	if dir := os.Getenv("WP_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
	if id := os.Getenv("WP_EXPORT_PRODUCT_ID"); id != "" {
		c.Export.ProductID = id
	}
	if domain := os.Getenv("WP_EXPORT_UID_DOMAIN"); domain != "" {
		c.Export.UIDDomain = domain
	}

	if lead := os.Getenv("WP_REMINDER_LEAD"); lead != "" {
		c.Reminders.LeadTime = ParseDurationWithFallback(lead, c.Reminders.LeadTime)
	}
	if days := os.Getenv("WP_REMINDER_DAYS"); days != "" {
		c.Reminders.HorizonDays = ParseIntWithFallback(days, c.Reminders.HorizonDays)
	}

	if timeout := os.Getenv("WP_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("WP_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}
	if _, err := time.LoadLocation(c.Time.Timezone); err != nil {
		return &ConfigError{Field: "time.timezone", Message: "unknown timezone " + strconv.Quote(c.Time.Timezone)}
	}

	if c.Validation.ActivityMaxLength < 1 {
		return &ConfigError{Field: "validation.activity_max_length", Message: "activity maximum length must be at least 1"}
	}
	if c.Validation.NotesMaxLength < 0 {
		return &ConfigError{Field: "validation.notes_max_length", Message: "notes maximum length cannot be negative"}
	}
	if c.Validation.HabitTitleMaxLength < 1 {
		return &ConfigError{Field: "validation.habit_title_max_length", Message: "habit title maximum length must be at least 1"}
	}

	if c.Export.ProductID == "" {
		return &ConfigError{Field: "export.product_id", Message: "calendar product id cannot be empty"}
	}
	if c.Export.UIDDomain == "" {
		return &ConfigError{Field: "export.uid_domain", Message: "calendar uid domain cannot be empty"}
	}

	if c.Reminders.LeadTime < 0 {
		return &ConfigError{Field: "reminders.lead_time", Message: "reminder lead time cannot be negative"}
	}
	if c.Reminders.HorizonDays < 1 {
		return &ConfigError{Field: "reminders.horizon_days", Message: "reminder horizon must be at least 1 day"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
