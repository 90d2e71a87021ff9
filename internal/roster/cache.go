package roster

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// CacheConfig sizes the category cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default category cache settings
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports category cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedCategoryEntry wraps a category with version metadata for cache invalidation
type cachedCategoryEntry struct {
	Version  string
	Category domain.Category
	CachedAt time.Time
}

// categoryCache is an in-memory LRU of category metadata with time-based
// expiration. It backs existence checks and lookups only; draw candidate
// pools are never cached.
type categoryCache struct {
	lru    *expirable.LRU[string, *cachedCategoryEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newCategoryCache(cfg CacheConfig) *categoryCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &categoryCache{
		lru: expirable.NewLRU[string, *cachedCategoryEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached category.
// Entries with a stale schema version are dropped.
func (c *categoryCache) Get(id string) (*domain.Category, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	category := entry.Category
	return &category, true
}

// Set stores a copy of category.
func (c *categoryCache) Set(category *domain.Category) {
	if category == nil {
		return
	}
	c.lru.Add(category.ID, &cachedCategoryEntry{
		Version:  CacheSchemaVersion,
		Category: *category,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a category from the cache.
func (c *categoryCache) Invalidate(id string) {
	c.lru.Remove(id)
}

// Clear removes all entries from the cache.
func (c *categoryCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit, miss and size counters.
func (c *categoryCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
