package config

import (
	"fmt"
	"os"

	"weekplan/internal/repository/sqlite"
)

// RepositoryOptions maps database settings onto repository options.
func (c *Config) RepositoryOptions() sqlite.Options {
	return sqlite.Options{
		QueryTimeout:   c.Database.QueryTimeout,
		WriteTimeout:   c.Database.WriteTimeout,
		DirPermissions: os.FileMode(c.Database.DirPermissions),
	}
}

// CreateRepository opens the configured database file.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), config.RepositoryOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(sqlite.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return repo, nil
}
