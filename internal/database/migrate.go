package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/LuckyDraw_Go/internal/database/migrations"
)

// Migrate applies every pending embedded migration for dialect
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	var (
		fsys fs.FS
		err  error
	)
	switch dialect {
	case goose.DialectPostgres:
		fsys, err = migrations.Postgres()
	case goose.DialectSQLite3:
		fsys, err = migrations.SQLite()
	default:
		return fmt.Errorf("%s: %s", ErrMsgUnsupportedMigrationType, dialect)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	if len(results) == 0 {
		slog.Default().Info(LogMsgMigrationsUpToDate, "dialect", dialect)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"dialect", dialect,
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return nil
}

// MigratePool runs the PostgreSQL migrations through a pgx pool
func MigratePool(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return Migrate(ctx, db, goose.DialectPostgres)
}
