// Package cache provides the short-lived in-memory state of the HTTP
// server, such as the per-IP rate limiter visitors. Entries expire on
// their own; it never holds startup records or icons.
// It uses patrickmn/go-cache for TTL-based expiry.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache wraps go-cache with the operations the server needs.
type Cache struct {
	store *gocache.Cache
}

// New creates a new cache with the given TTL and cleanup interval.
// defaultTTL is the default expiration time for entries.
// cleanupInterval is how often expired items are removed from memory.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Add stores value only if key is absent or expired. It reports whether
// the value was stored.
func (c *Cache) Add(key string, value any) bool {
	return c.store.Add(key, value, gocache.DefaultExpiration) == nil
}

// Set stores a value with the default TTL, restarting its expiry.
func (c *Cache) Set(key string, value any) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}

// ItemCount returns the number of items in the cache, including expired
// items that have not been cleaned up yet.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}
