package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"WP_CONFIG", "WP_DB_DIR", "WP_DB_FILENAME", "WP_DB_QUERY_TIMEOUT", "WP_DB_WRITE_TIMEOUT",
		"WP_DB_DIR_PERMISSIONS", "WP_TIME_DISPLAY_FORMAT", "WP_TIMEZONE", "WP_VALIDATION_ACTIVITY_MAX",
		"WP_VALIDATION_NOTES_MAX", "WP_VALIDATION_HABIT_TITLE_MAX", "WP_EXPORT_DIR", "WP_EXPORT_PRODUCT_ID",
		"WP_EXPORT_UID_DOMAIN", "WP_REMINDER_LEAD", "WP_REMINDER_DAYS", "WP_APP_TIMEOUT", "WP_APP_VERBOSE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "weekplan.db", cfg.Database.Filename)
	assert.Equal(t, "UTC", cfg.Time.Timezone)
	assert.Equal(t, "-//MyScheduleApp//EN", cfg.Export.ProductID)
	assert.Equal(t, "myschedule.app", cfg.Export.UIDDomain)
	assert.Equal(t, 10*time.Minute, cfg.Reminders.LeadTime)
	assert.Equal(t, 7, cfg.Reminders.HorizonDays)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WP_DB_DIR", "/tmp/wp")
	t.Setenv("WP_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("WP_DB_WRITE_TIMEOUT", "not-a-duration")
	t.Setenv("WP_TIMEZONE", "Europe/Brussels")
	t.Setenv("WP_REMINDER_DAYS", "3")
	t.Setenv("WP_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/wp", cfg.Database.Dir)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, "Europe/Brussels", cfg.Time.Timezone)
	assert.Equal(t, 3, cfg.Reminders.HorizonDays)
	assert.True(t, cfg.Application.Verbose)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"bad timezone", func(c *Config) { c.Time.Timezone = "Mars/Olympus" }, "time.timezone"},
		{"activity length", func(c *Config) { c.Validation.ActivityMaxLength = 0 }, "validation.activity_max_length"},
		{"product id", func(c *Config) { c.Export.ProductID = "" }, "export.product_id"},
		{"horizon", func(c *Config) { c.Reminders.HorizonDays = 0 }, "reminders.horizon_days"},
		{"app timeout", func(c *Config) { c.Application.Timeout = -time.Second }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestLoader_FileThenEnvThenOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[database]
filename = "from-file.db"
query_timeout = "2s"

[time]
timezone = "America/New_York"

[export]
uid_domain = "example.org"

[reminders]
lead_time = "15m"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("WP_DB_FILENAME", "from-env.db")

	tz := "Asia/Tokyo"
	cfg, err := NewLoaderWithFile(path).LoadWithOverrides(&ConfigOverrides{Timezone: &tz})
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Database.Filename)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "example.org", cfg.Export.UIDDomain)
	assert.Equal(t, 15*time.Minute, cfg.Reminders.LeadTime)
	assert.Equal(t, "Asia/Tokyo", cfg.Time.Timezone)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := NewLoaderWithFile(filepath.Join(t.TempDir(), "absent.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, "weekplan.db", cfg.Database.Filename)
}

func TestLoader_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database\nfilename ="), 0o644))

	_, err := NewLoaderWithFile(path).Load()
	require.Error(t, err)
	assert.IsType(t, &ConfigError{}, err)
}

func TestLoader_OverrideInvalidatesConfig(t *testing.T) {
	clearEnv(t)
	days := 0
	_, err := NewLoaderWithFile("").LoadWithOverrides(&ConfigOverrides{ReminderDays: &days})
	assert.Error(t, err)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := NewConfig()
	cfg.Time.Timezone = "Europe/Paris"
	cfg.Reminders.LeadTime = 20 * time.Minute
	require.NoError(t, cfg.WriteFile(path))

	loaded := NewConfig()
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, "Europe/Paris", loaded.Time.Timezone)
	assert.Equal(t, 20*time.Minute, loaded.Reminders.LeadTime)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("WP_CONFIG", "/etc/weekplan.toml")
	assert.Equal(t, "/etc/weekplan.toml", DefaultConfigPath())
}
