package oddsapi

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/prop-edge/internal/models"
)

// MarketCache keeps normalized per-event market responses for a short TTL.
// The odds feed bills by request, so rerunning the pipeline inside the TTL
// reuses the previous fetch.
type MarketCache struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewMarketCache creates a market cache with the given TTL
func NewMarketCache(ttl time.Duration) *MarketCache {
	return &MarketCache{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Get retrieves cached market lines for an event and market key
func (mc *MarketCache) Get(key string) ([]*models.MarketLine, bool) {
	if v, found := mc.cache.Get(key); found {
		if lines, ok := v.([]*models.MarketLine); ok {
			return lines, true
		}
	}
	return nil, false
}

// Set stores market lines for an event and market key
func (mc *MarketCache) Set(key string, lines []*models.MarketLine) {
	mc.cache.Set(key, lines, mc.ttl)
}

// Flush drops all cached responses
func (mc *MarketCache) Flush() {
	mc.cache.Flush()
}

// ItemCount returns the number of cached entries
func (mc *MarketCache) ItemCount() int {
	return mc.cache.ItemCount()
}
