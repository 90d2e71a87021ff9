package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/roster"
	"github.com/osse101/LuckyDraw_Go/internal/validation"
)

// RosterOptions builds the roster service options cfg asks for
func RosterOptions(cfg *config.Config) ([]roster.Option, error) {
	var opts []roster.Option
	if cfg.ExtraInfoSchema != "" {
		schema, err := validation.LoadExtraInfoSchema(cfg.ExtraInfoSchema)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSchema, err)
		}
		slog.Info(LogMsgExtraInfoSchemaLoaded, "path", schema.Path())
		opts = append(opts, roster.WithExtraInfoValidator(schema))
	}
	return opts, nil
}

// RosterCacheConfig maps the cache settings of cfg
func RosterCacheConfig(cfg *config.Config) roster.CacheConfig {
	return roster.CacheConfig{Size: cfg.CategoryCacheSize, TTL: cfg.CategoryCacheTTL}
}
