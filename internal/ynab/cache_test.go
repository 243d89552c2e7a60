package ynab

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCacheExpiry(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := newResponseCache(time.Minute)
	cache.now = func() time.Time { return clock }

	cache.set("/budgets/b-1", []byte(`{"data":{}}`))
	require.Equal(t, 1, cache.size())

	body, ok := cache.get("/budgets/b-1")
	require.True(t, ok)
	assert.Equal(t, `{"data":{}}`, string(body))

	clock = clock.Add(2 * time.Minute)
	_, ok = cache.get("/budgets/b-1")
	assert.False(t, ok, "entries expire after the TTL")
	assert.Equal(t, 0, cache.size(), "expired entries are evicted on read")
}

func TestResponseCacheDisabled(t *testing.T) {
	cache := newResponseCache(0)

	cache.set("/budgets/b-1", []byte("body"))
	_, ok := cache.get("/budgets/b-1")
	assert.False(t, ok, "zero TTL disables the cache")
	assert.Equal(t, 0, cache.size())
}

func TestResponseCacheClear(t *testing.T) {
	cache := newResponseCache(time.Minute)
	cache.set("/a", []byte("1"))
	cache.set("/b", []byte("2"))
	require.Equal(t, 2, cache.size())

	cache.clear()
	assert.Equal(t, 0, cache.size())
}
