package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/LuckyDraw_Go/docs"
	"github.com/osse101/LuckyDraw_Go/internal/bootstrap"
	"github.com/osse101/LuckyDraw_Go/internal/concurrency"
	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/lottery"
	"github.com/osse101/LuckyDraw_Go/internal/roster"
	"github.com/osse101/LuckyDraw_Go/internal/server"
)

const shutdownTimeout = 30 * time.Second

// @title Lucky Draw API
// @version 1.0
// @description Category-scoped lucky draws with CSV import and export.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}

	draws := lottery.NewService(store, concurrency.NewLockManager(), lottery.Config{
		FetchTimeout:   cfg.DrawFetchTimeout,
		PersistTimeout: cfg.DrawPersistTimeout,
	})
	rosterOpts, err := bootstrap.RosterOptions(cfg)
	if err != nil {
		slog.Error("Failed to configure roster", "error", err)
		store.Close()
		os.Exit(1)
	}
	rosterService := roster.NewService(store, bootstrap.RosterCacheConfig(cfg), rosterOpts...)

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxBodyBytes:    cfg.MaxImportBytes,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		WriteTimeout:    cfg.WriteTimeout,
		EnableSwaggerUI: cfg.EnableSwagger,
	}, store, draws, rosterService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  store,
	})
}
