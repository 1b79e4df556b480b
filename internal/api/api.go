package api

import (
	"context"
	"time"

	"weekplan/internal/config"
	"weekplan/internal/repository/sqlite"
	"weekplan/internal/services"
	"weekplan/internal/store"
)

// New loads persisted state from repo and returns the BusinessAPI over it.
// A nil clock means time.Now.
func New(ctx context.Context, repo sqlite.Repository, cfg *config.Config, now services.Clock) (BusinessAPI, error) {
	if now == nil {
		now = time.Now
	}
	s := store.New(repo)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return NewBusinessAPI(services.NewServiceContainer(s, cfg, now), now), nil
}
