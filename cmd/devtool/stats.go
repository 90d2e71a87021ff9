package main

import (
	"context"
	"flag"
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

type StatsCommand struct {
	env *env
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Show categories, active counts and recent draws ([-recent n])"
}

func (c *StatsCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	recent := fs.Int("recent", 10, "number of recent draw records to show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	a, err := c.env.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	categories, err := a.roster.ListCategories(ctx)
	if err != nil {
		return err
	}
	counts, err := a.roster.ActiveParticipantCounts(ctx)
	if err != nil {
		return err
	}

	PrintHeader("Categories")
	for _, cat := range categories {
		state := "active"
		if !cat.IsActive {
			state = "inactive"
		}
		PrintInfo("%s  %s (%s): %d active participants", cat.ID, cat.Name, state, counts[cat.ID])
	}

	uncategorized, err := a.roster.ListParticipants(ctx, domain.ParticipantFilter{Uncategorized: true, ActiveOnly: true})
	if err != nil {
		return err
	}
	PrintInfo("Uncategorized: %d active participants", len(uncategorized))

	PrintHeader("Recent draws")
	records, err := a.roster.ListDrawRecords(ctx, domain.DrawRecordFilter{Limit: *recent})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		PrintInfo("No draws yet")
	}
	for _, r := range records {
		PrintInfo("%s  %s -> %s", r.LotteryDate.Format(time.RFC3339), r.ParticipantName, r.PrizeName)
	}
	return nil
}
