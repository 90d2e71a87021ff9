package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/LuckyDraw_Go/internal/config"
)

const maintenanceDB = "postgres"

type WaitForDBCommand struct {
	env *env
}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	maxRetries := fs.Int("retries", 30, "maximum connection attempts")
	retryInterval := fs.Duration("interval", 2*time.Second, "delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.env.config()
	if err != nil {
		return err
	}

	PrintHeader("Waiting for database...")
	if cfg.DBDriver == config.DriverSQLite {
		PrintSuccess("SQLite needs no server (%s)", cfg.SQLitePath)
		return nil
	}

	for i := 0; i < *maxRetries; i++ {
		err = ping(cfg.GetDBConnString())
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		PrintWarning("Database not ready (%d/%d): %v", i+1, *maxRetries, err)
		time.Sleep(*retryInterval)
	}
	return fmt.Errorf("database failed to become ready after %d attempts", *maxRetries)
}

func ping(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}

// maintenanceConn connects to the server's maintenance database so the
// target database can be created or dropped.
func maintenanceConn(ctx context.Context, cfg *config.Config) (*pgx.Conn, error) {
	admin := *cfg
	admin.DBName = maintenanceDB
	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		return nil, fmt.Errorf("unable to connect to %s database: %w", maintenanceDB, err)
	}
	return conn, nil
}

type SetupCommand struct {
	env *env
}

func (c *SetupCommand) Name() string {
	return "setup"
}

func (c *SetupCommand) Description() string {
	return "Create the database if missing and apply migrations"
}

func (c *SetupCommand) Run(args []string) error {
	ctx := context.Background()
	cfg, err := c.env.config()
	if err != nil {
		return err
	}

	PrintHeader("Starting Database Setup")
	if cfg.DBDriver == config.DriverPostgres {
		if err := createDatabase(ctx, cfg); err != nil {
			return err
		}
	}

	a, err := c.env.open(ctx)
	if err != nil {
		return err
	}
	a.Close()

	PrintSuccess("Setup complete! Run 'devtool seed' for demo data.")
	return nil
}

func createDatabase(ctx context.Context, cfg *config.Config) error {
	conn, err := maintenanceConn(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		PrintInfo("Database %s already exists", cfg.DBName)
		return nil
	}

	PrintInfo("Creating database %s...", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	PrintSuccess("Database created")
	return nil
}

type ResetCommand struct {
	env *env
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Drop and recreate the database (-confirm yes)"
}

func (c *ResetCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	confirm := fs.String("confirm", "", "must be \""+confirmYes+"\"")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *confirm != confirmYes {
		return errors.New("reset deletes all lottery data; pass -confirm " + confirmYes)
	}

	ctx := context.Background()
	cfg, err := c.env.config()
	if err != nil {
		return err
	}

	PrintHeader("Resetting database")
	switch cfg.DBDriver {
	case config.DriverSQLite:
		for _, suffix := range []string{"", "-wal", "-shm"} {
			if err := os.Remove(cfg.SQLitePath + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to remove %s: %w", cfg.SQLitePath+suffix, err)
			}
		}
	case config.DriverPostgres:
		if err := recreateDatabase(ctx, cfg); err != nil {
			return err
		}
	}

	a, err := c.env.open(ctx)
	if err != nil {
		return err
	}
	a.Close()

	PrintSuccess("Database reset complete")
	return nil
}

func recreateDatabase(ctx context.Context, cfg *config.Config) error {
	conn, err := maintenanceConn(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	PrintInfo("Terminating existing connections to %s...", cfg.DBName)
	_, err = conn.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName)
	if err != nil {
		PrintWarning("Failed to terminate connections: %v", err)
	}

	name := pgx.Identifier{cfg.DBName}.Sanitize()
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}
