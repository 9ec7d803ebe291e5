package cache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
)

// StrikeCache counts strikes per key inside a sliding TTL window. Each strike
// refreshes the window, so a key is forgotten once it stays quiet for ttl.
type StrikeCache struct {
	mu    sync.Mutex
	cache  *ristretto.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func New(maxSizePow2 int, ttl time.Duration, logger *slog.Logger) (*StrikeCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &StrikeCache{cache: cache, ttl: ttl, logger: logger}, nil
}

// Strike adds one strike for key and returns the new total. A strike the
// cache refuses to store is still counted in the returned total, but the
// next strike for key starts over.
func (c *StrikeCache) Strike(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 1
	if val, found := c.cache.Get(key); found {
		count = val.(int) + 1
	}
	if !c.cache.SetWithTTL(key, count, int64(len(key)+8), c.ttl) {
		c.logger.Debug("strike not admitted to cache",
			slog.String("key", key),
			slog.Int("count", count))
		return count
	}
	c.cache.Wait()
	return count
}

func (c *StrikeCache) Count(key string) int {
	val, found := c.cache.Get(key)
	if !found {
		return 0
	}
	return val.(int)
}

func (c *StrikeCache) Close() {
	c.cache.Close()
}

func (c *StrikeCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
