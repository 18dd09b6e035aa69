// Package cache provides the client-side query cache: read results keyed by
// entity group, each with its own staleness window.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// QueryCache is a mutex-guarded TTL map. An expired entry behaves like a
// miss; expired entries are dropped lazily on access.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty cache.
func New() *QueryCache {
	return &QueryCache{entries: make(map[string]entry)}
}

// Get returns the fresh value stored under key, if any.
func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, false
	}

	return e.value, true
}

// Set stores value under key for the given staleness window.
func (c *QueryCache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
}

// Invalidate drops every entry whose key starts with prefix, so a mutation
// can evict an entire entity group ("food", "cart", "orders") at once.
func (c *QueryCache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
