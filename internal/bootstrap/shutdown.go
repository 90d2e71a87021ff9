package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/LuckyDraw_Go/internal/database"
)

// Stopper is the part of the HTTP server shutdown needs
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stopper
	Store  database.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight draws finish
// against an open store, then closes the store. Errors are logged and do
// not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
