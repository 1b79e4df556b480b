package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weekplan/internal/api"
	"weekplan/internal/config"
)

// Monday 6 January 2025, 08:00 UTC.
var testNow = time.Date(2025, time.January, 6, 8, 0, 0, 0, time.UTC)

// setupTestApp returns an App over a fresh in-memory database and the buffer
// it writes to. The package clock is pinned to testNow for the test.
func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	cfg := config.NewConfig()
	cfg.Export.Dir = t.TempDir()

	businessAPI, err := api.New(context.Background(), repo, cfg, func() time.Time { return testNow })
	require.NoError(t, err)

	original := timeNow
	timeNow = func() time.Time { return testNow }
	t.Cleanup(func() { timeNow = original })

	var out bytes.Buffer
	return NewAppWithConfig(businessAPI, cfg).WithOutput(&out), &out
}
