package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
)

const migrationsDir = "internal/database/migrations"

type MigrateCommand struct {
	env *env
}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, create <name>)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("subcommand required: up, create")
	}

	switch args[0] {
	case "up":
		// Opening the store applies every pending embedded migration.
		a, err := c.env.open(context.Background())
		if err != nil {
			return err
		}
		a.Close()
		PrintSuccess("Migrations applied (%s)", a.cfg.DBDriver)
		return nil

	case "create":
		if len(args) < 2 {
			return errors.New("migration name required for create")
		}
		cfg, err := c.env.config()
		if err != nil {
			return err
		}
		goose.SetSequential(true)
		dir := filepath.Join(migrationsDir, cfg.DBDriver)
		if err := goose.Create(nil, dir, args[1], "sql"); err != nil {
			return fmt.Errorf("failed to create migration: %w", err)
		}
		PrintWarning("Add the matching migration for the other driver as well")
		return nil
	}
	return fmt.Errorf("unknown subcommand: %s", args[0])
}
