package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/database"
	"github.com/osse101/LuckyDraw_Go/internal/database/postgres"
	"github.com/osse101/LuckyDraw_Go/internal/database/sqlite"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// OpenStore connects the backend named by cfg.DBDriver and brings its
// schema up to date.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.DBDriver, "host", cfg.DBHost, "database", cfg.DBName)
		return postgres.NewStore(pool), nil

	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.DBDriver, "path", cfg.SQLitePath)
		return store, nil
	}
	return nil, fmt.Errorf(ErrFmtUnsupportedDBDriver, cfg.DBDriver)
}
