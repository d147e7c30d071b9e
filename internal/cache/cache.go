package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Service is the process-local cache used for catalog reads and live cart
// sessions.
type Service interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
	Flush()
}

type memoryCache struct {
	store *gocache.Cache
}

// NewMemory returns a Service backed by an expiring in-memory cache.
func NewMemory(defaultTTL, cleanupInterval time.Duration) Service {
	return &memoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

func (c *memoryCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *memoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

func (c *memoryCache) Delete(key string) {
	c.store.Delete(key)
}

func (c *memoryCache) Flush() {
	c.store.Flush()
}
