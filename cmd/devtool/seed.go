package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// seedCategories are created by the seed command, one participant batch each
var seedCategories = []string{"Staff", "Guests", "VIP"}

type SeedCommand struct {
	env *env
}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed demo categories and participants ([-participants n])"
}

func (c *SeedCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	perCategory := fs.Int("participants", 20, "participants per category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *perCategory <= 0 {
		return fmt.Errorf("-participants must be positive, got %d", *perCategory)
	}

	ctx := context.Background()
	a, err := c.env.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	PrintHeader("Seeding demo data")
	for _, name := range seedCategories {
		category, err := a.roster.CreateCategory(ctx, domain.CategoryInput{Name: name})
		if err != nil {
			return fmt.Errorf("failed to create category %s: %w", name, err)
		}

		// Goes through the CSV importer so seeded rows match real imports.
		res, err := a.roster.ImportParticipants(ctx, seedCSV(name, *perCategory), &category.ID)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
		PrintSuccess("%s (%s): %d participants", name, category.ID, res.Imported)
	}
	return nil
}

func seedCSV(prefix string, n int) string {
	var b strings.Builder
	b.WriteString("Name\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%s %03d\n", prefix, i)
	}
	return b.String()
}
