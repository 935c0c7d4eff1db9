package cache

import "time"

// SetNowFunc overrides the clock of a memory cache in tests.
func SetNowFunc[V any](c Cache[V], now func() time.Time) {
	c.(*memoryCache[V]).now = now
}
