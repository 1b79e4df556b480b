package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultConfigFileName is looked up under the database directory when WP_CONFIG is unset.
const DefaultConfigFileName = "config.toml"

// fileConfig is the on-disk shape. Durations are strings such as "5s".
type fileConfig struct {
	Database struct {
		Dir          string `toml:"dir"`
		Filename     string `toml:"filename"`
		QueryTimeout string `toml:"query_timeout"`
		WriteTimeout string `toml:"write_timeout"`
	} `toml:"database"`
	Time       TimeConfig       `toml:"time"`
	Validation ValidationConfig `toml:"validation"`
	Export     ExportConfig     `toml:"export"`
	Reminders  struct {
		LeadTime    string `toml:"lead_time"`
		HorizonDays int    `toml:"horizon_days"`
	} `toml:"reminders"`
	Application struct {
		Timeout string `toml:"timeout"`
		Verbose *bool  `toml:"verbose"`
	} `toml:"application"`
}

// DefaultConfigPath returns $WP_CONFIG or ~/.weekplan/config.toml.
func DefaultConfigPath() string {
	if path := os.Getenv("WP_CONFIG"); path != "" {
		return path
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".weekplan", DefaultConfigFileName)
}

// LoadFromFile merges the TOML file at path into c. A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("%s: %v", path, err)}
	}

	setString(&c.Database.Dir, fc.Database.Dir)
	setString(&c.Database.Filename, fc.Database.Filename)
	if fc.Database.QueryTimeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(fc.Database.QueryTimeout, c.Database.QueryTimeout)
	}
	if fc.Database.WriteTimeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(fc.Database.WriteTimeout, c.Database.WriteTimeout)
	}

	setString(&c.Time.DisplayFormat, fc.Time.DisplayFormat)
	setString(&c.Time.Timezone, fc.Time.Timezone)

	setInt(&c.Validation.ActivityMaxLength, fc.Validation.ActivityMaxLength)
	setInt(&c.Validation.NotesMaxLength, fc.Validation.NotesMaxLength)
	setInt(&c.Validation.HabitTitleMaxLength, fc.Validation.HabitTitleMaxLength)

	setString(&c.Export.Dir, fc.Export.Dir)
	setString(&c.Export.ProductID, fc.Export.ProductID)
	setString(&c.Export.UIDDomain, fc.Export.UIDDomain)

	if fc.Reminders.LeadTime != "" {
		c.Reminders.LeadTime = ParseDurationWithFallback(fc.Reminders.LeadTime, c.Reminders.LeadTime)
	}
	setInt(&c.Reminders.HorizonDays, fc.Reminders.HorizonDays)

	if fc.Application.Timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(fc.Application.Timeout, c.Application.Timeout)
	}
	if fc.Application.Verbose != nil {
		c.Application.Verbose = *fc.Application.Verbose
	}

	return nil
}

// WriteFile writes the current configuration as TOML.
func (c *Config) WriteFile(path string) error {
	var fc fileConfig
	fc.Database.Dir = c.Database.Dir
	fc.Database.Filename = c.Database.Filename
	fc.Database.QueryTimeout = c.Database.QueryTimeout.String()
	fc.Database.WriteTimeout = c.Database.WriteTimeout.String()
	fc.Time = c.Time
	fc.Validation = c.Validation
	fc.Export = c.Export
	fc.Reminders.LeadTime = c.Reminders.LeadTime.String()
	fc.Reminders.HorizonDays = c.Reminders.HorizonDays
	fc.Application.Timeout = c.Application.Timeout.String()
	fc.Application.Verbose = &c.Application.Verbose

	data, err := toml.Marshal(fc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
