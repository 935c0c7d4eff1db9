// Package cache provides a small TTL cache used to reuse validation verdicts
// for recently checked addresses and finished discovery results for repeat
// runs against the same target.
package cache

import (
	"context"
	"sync"
	"time"
)

// Cache stores values under string keys with a per-entry expiry.
type Cache[V any] interface {
	// Get returns the value stored under key and whether a live entry existed.
	Get(ctx context.Context, key string) (V, bool)

	// Set stores value under key with the given TTL, replacing any previous entry.
	Set(ctx context.Context, key string, value V, ttl time.Duration)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type memoryCache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	now     func() time.Time
}

// NewMemory creates an in-process Cache. Expired entries are dropped lazily on
// read and swept opportunistically on write, so memory usage tracks the
// working set rather than the total history.
func NewMemory[V any]() Cache[V] {
	return &memoryCache[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

func (c *memoryCache[V]) Get(_ context.Context, key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V

		return zero, false
	}

	if c.now().After(e.expiresAt) {
		delete(c.entries, key)

		var zero V

		return zero, false
	}

	return e.value, true
}

func (c *memoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	// Amortized sweep: drop a handful of expired entries per write.
	swept := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}

		swept++
		if swept >= 16 {
			break
		}
	}

	c.entries[key] = entry[V]{value: value, expiresAt: now.Add(ttl)}
}
