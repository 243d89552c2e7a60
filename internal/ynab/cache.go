package ynab

import (
	"sync"
	"time"
)

// responseCache is a small in-memory TTL cache over raw response bodies.
// It exists to keep a burst of tool calls from hammering the YNAB API;
// nothing is ever written to disk. A zero TTL disables caching entirely.
type responseCache struct {
	entries map[string]cacheEntry
	ttl     time.Duration
	mu      sync.Mutex
	now     func() time.Time
}

type cacheEntry struct {
	expires time.Time
	body    []byte
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *responseCache) get(path string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, path)
		return nil, false
	}
	return entry.body, true
}

func (c *responseCache) set(path string, body []byte) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = cacheEntry{body: body, expires: c.now().Add(c.ttl)}
}

func (c *responseCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *responseCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
