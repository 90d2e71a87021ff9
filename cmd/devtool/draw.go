package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

type DrawCommand struct {
	env *env
}

func (c *DrawCommand) Name() string {
	return "draw"
}

func (c *DrawCommand) Description() string {
	return "Run a draw (-category id [-count n] <prize>...)"
}

func (c *DrawCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	category := fs.String("category", "", "category to draw from")
	count := fs.Int("count", 1, "number of winners")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *category == "" {
		return errors.New("-category is required")
	}
	if fs.NArg() == 0 {
		return errors.New("at least one prize is required")
	}

	ctx := context.Background()
	a, err := c.env.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.draws.Draw(ctx, domain.DrawRequest{
		CategoryID:  *category,
		PrizeNames:  fs.Args(),
		WinnerCount: *count,
	})
	if err != nil {
		return err
	}

	PrintHeader("Draw results")
	for i, w := range result.Winners {
		PrintSuccess("%d. %s wins %s", i+1, w.Name, w.PrizeName)
	}
	PrintInfo("%d winners from %d active participants at %s",
		len(result.Winners), result.TotalParticipants, result.Winners[0].LotteryDate.Format(time.RFC3339))
	return nil
}
