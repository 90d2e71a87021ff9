package main

import (
	"context"
	"fmt"

	"github.com/osse101/LuckyDraw_Go/internal/bootstrap"
	"github.com/osse101/LuckyDraw_Go/internal/concurrency"
	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
	"github.com/osse101/LuckyDraw_Go/internal/roster"
)

// env carries what commands need to reach the configured store
type env struct {
	loadConfig func() (*config.Config, error)
}

// app bundles the services a command runs against
type app struct {
	cfg    *config.Config
	store  repository.Store
	roster roster.Service
	draws  lottery.Service
}

func (e *env) config() (*config.Config, error) {
	cfg, err := e.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// open connects the store, applying migrations, and builds the services
func (e *env) open(ctx context.Context) (*app, error) {
	cfg, err := e.config()
	if err != nil {
		return nil, err
	}

	rosterOpts, err := bootstrap.RosterOptions(cfg)
	if err != nil {
		return nil, err
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		store:  store,
		roster: roster.NewService(store, bootstrap.RosterCacheConfig(cfg), rosterOpts...),
		draws: lottery.NewService(store, concurrency.NewLockManager(), lottery.Config{
			FetchTimeout:   cfg.DrawFetchTimeout,
			PersistTimeout: cfg.DrawPersistTimeout,
		}),
	}, nil
}

func (a *app) Close() {
	a.store.Close()
}
