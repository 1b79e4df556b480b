package main

import (
	"context"
	"fmt"
	"os"

	"weekplan/internal/api"
	"weekplan/internal/cli"
	"weekplan/internal/config"
)

func main() {
	root := cli.NewRootCommand(open)
	if err := root.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// open creates the repository for the current environment and loads the plan from it.
func open(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error) {
	factory := NewRepositoryFactory(getEnvironment(), cfg)

	repo, err := factory.CreateRepository()
	if err != nil {
		return nil, nil, err
	}

	businessAPI, err := api.New(ctx, repo, cfg, nil)
	if err != nil {
		repo.Close()
		return nil, nil, err
	}
	return businessAPI, repo.Close, nil
}
