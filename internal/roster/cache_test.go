package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

func TestCacheInvalidation(t *testing.T) {
	cache := newCategoryCache(CacheConfig{Size: 10, TTL: 1 * time.Minute})
	category := &domain.Category{ID: "cat-1", Name: "Staff", IsActive: true}

	cache.Set(category)

	retrieved, found := cache.Get("cat-1")
	require.True(t, found)
	assert.Equal(t, category, retrieved)

	cache.Invalidate("cat-1")

	retrieved, found = cache.Get("cat-1")
	assert.False(t, found)
	assert.Nil(t, retrieved)
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := newCategoryCache(DefaultCacheConfig())
	cache.Set(&domain.Category{ID: "cat-1", Name: "Staff"})

	first, _ := cache.Get("cat-1")
	first.Name = "Mutated"

	second, _ := cache.Get("cat-1")
	assert.Equal(t, "Staff", second.Name)
}

func TestCacheStats(t *testing.T) {
	cache := newCategoryCache(CacheConfig{Size: 10, TTL: 1 * time.Minute})

	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, 0, stats.Size)

	cache.Get("missing")
	stats = cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	cache.Set(&domain.Category{ID: "cat-1"})
	cache.Get("cat-1")
	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheExpiry(t *testing.T) {
	cache := newCategoryCache(CacheConfig{Size: 10, TTL: 20 * time.Millisecond})
	cache.Set(&domain.Category{ID: "cat-1"})

	assert.Eventually(t, func() bool {
		_, found := cache.Get("cat-1")
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestCacheClear(t *testing.T) {
	cache := newCategoryCache(DefaultCacheConfig())
	cache.Set(&domain.Category{ID: "a"})
	cache.Set(&domain.Category{ID: "b"})

	cache.Clear()
	assert.Equal(t, 0, cache.GetStats().Size)
}

func TestCacheConfig(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.Equal(t, 1000, cfg.Size)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}
