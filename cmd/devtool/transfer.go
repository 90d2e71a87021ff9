package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

type ImportCommand struct {
	env *env
}

func (c *ImportCommand) Name() string {
	return "import"
}

func (c *ImportCommand) Description() string {
	return "Import participants from a CSV file ([-category id] <file>)"
}

func (c *ImportCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	category := fs.String("category", "", "assign every row to this category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("exactly one CSV file is required")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fs.Arg(0), err)
	}

	ctx := context.Background()
	a, err := c.env.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	PrintHeader("Importing " + fs.Arg(0))
	res, err := a.roster.ImportParticipants(ctx, string(data), domain.StringPtr(*category))
	if err != nil {
		return err
	}

	for _, rowErr := range res.Errors {
		PrintWarning("%s", rowErr)
	}
	PrintSuccess("Imported %d of %d rows", res.Imported, res.Total)
	return nil
}

type ExportCommand struct {
	env *env
}

func (c *ExportCommand) Name() string {
	return "export"
}

func (c *ExportCommand) Description() string {
	return "Export participants or lottery_records to CSV ([-category id] [-o file] <type>)"
}

func (c *ExportCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	category := fs.String("category", "", "restrict the export to this category")
	output := fs.String("o", "", "output path (defaults to the generated filename)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("export type required: %s or %s", domain.ExportTypeParticipants, domain.ExportTypeLotteryRecords)
	}

	ctx := context.Background()
	a, err := c.env.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	file, err := a.roster.Export(ctx, domain.ExportType(fs.Arg(0)), domain.StringPtr(*category))
	if err != nil {
		return err
	}

	content, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		return fmt.Errorf("failed to decode export: %w", err)
	}

	path := *output
	if path == "" {
		path = file.Filename
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	PrintSuccess("Wrote %s (%d bytes)", path, len(content))
	return nil
}
