package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/api"
	"weekplan/internal/config"
	"weekplan/internal/logging"
)

type testOpener struct {
	opened int
	closed int
}

func (o *testOpener) open(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error) {
	repo, err := config.CreateTestRepository()
	if err != nil {
		return nil, nil, err
	}
	businessAPI, err := api.New(ctx, repo, cfg, func() time.Time { return testNow })
	if err != nil {
		repo.Close()
		return nil, nil, err
	}
	o.opened++
	return businessAPI, func() error {
		o.closed++
		return repo.Close()
	}, nil
}

func runRoot(t *testing.T, args ...string) (*RootCommand, *testOpener, string, error) {
	t.Helper()
	t.Cleanup(func() { logging.EnableDebug(false) })

	opener := &testOpener{}
	root := NewRootCommand(opener.open)
	var out bytes.Buffer
	root.SetOutput(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.toml"), "--export-dir", t.TempDir()}, args...))

	err := root.Execute(context.Background())
	return root, opener, out.String(), err
}

func TestRootCommand_RunsSubcommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "list", args: []string{"list", "sun"}, contains: "Church"},
		{name: "week", args: []string{"week", "--date", "2025-03-12"}, contains: "Week 11, 2025"},
		{name: "add", args: []string{"add", "mon", "--time", "5:00-6:00", "--category", "anchor", "Early", "start"}, contains: "Added Early start"},
		{name: "done", args: []string{"done", "mon-1", "--date", "2025-01-06"}, contains: "+10 XP"},
		{name: "template", args: []string{"template", "list"}, contains: "Gym Session"},
		{name: "export to stdout", args: []string{"export", "csv", "-o", "-"}, contains: `"Sunday","20:00-23:30"`},
		{name: "summary", args: []string{"summary"}, contains: "school"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, opener, out, err := runRoot(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
			assert.Equal(t, 1, opener.opened)
			assert.Equal(t, 1, opener.closed)
		})
	}
}

func TestRootCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "handler error", args: []string{"done", "mon-99"}, wantErr: "failed to toggle item: schedule item not found: mon-99"},
		{name: "argument count", args: []string{"delete", "mon"}, wantErr: "accepts 2 arg(s)"},
		{name: "unknown command", args: []string{"explode"}, wantErr: "unknown command"},
		{name: "invalid override", args: []string{"--timezone", "Mars/Olympus", "list"}, wantErr: "timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, opener, _, err := runRoot(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, opener.opened, opener.closed)
		})
	}
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	root, _, _, err := runRoot(t,
		"--timezone", "Europe/Brussels",
		"--reminder-days", "3",
		"--reminder-lead", "15m",
		"--app-timeout", "5s",
		"--verbose",
		"summary")
	require.NoError(t, err)

	cfg := root.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, "Europe/Brussels", cfg.Time.Timezone)
	assert.Equal(t, 3, cfg.Reminders.HorizonDays)
	assert.Equal(t, 15*time.Minute, cfg.Reminders.LeadTime)
	assert.Equal(t, 5*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
	assert.True(t, logging.DebugEnabled())
	assert.Equal(t, 5*time.Second, root.getAppTimeout())
}

func TestRootCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[reminders]\nhorizon_days = 2\n"), 0644))

	opener := &testOpener{}
	root := NewRootCommand(opener.open)
	root.SetOutput(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "--reminder-lead", "1h", "remind"})

	require.NoError(t, root.Execute(context.Background()))
	assert.Equal(t, 2, root.Config().Reminders.HorizonDays)
	assert.Equal(t, time.Hour, root.Config().Reminders.LeadTime)
}
