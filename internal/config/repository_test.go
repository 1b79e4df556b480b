package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRepository(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = filepath.Join(t.TempDir(), "data")
	cfg.Database.Filename = "test.db"

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.PutDocument(context.Background(), "habits", "[]"))

	_, err = os.Stat(cfg.GetDatabasePath())
	assert.NoError(t, err)
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	docs, err := repo.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRepositoryOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.QueryTimeout = 3 * time.Second

	opts := cfg.RepositoryOptions()
	assert.Equal(t, 3*time.Second, opts.QueryTimeout)
	assert.Equal(t, 5*time.Second, opts.WriteTimeout)
	assert.Equal(t, os.FileMode(0755), opts.DirPermissions)
}
