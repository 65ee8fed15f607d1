package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the invalidate-by-key port shared by the tally engine (reader)
// and the ballot caster (invalidator).
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Invalidate(key string)
}

// TallyKey is the cache key for a topic's aggregate result.
func TallyKey(topicID int64) string {
	return fmt.Sprintf("tally:%d", topicID)
}

type memoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(defaultTTL time.Duration) Cache {
	return &memoryCache{
		cache: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

func (c *memoryCache) Get(key string) ([]byte, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	data, ok := value.([]byte)
	return data, ok
}

func (c *memoryCache) Set(key string, value []byte, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

func (c *memoryCache) Invalidate(key string) {
	c.cache.Delete(key)
}
