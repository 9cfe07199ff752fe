package zipstat

import "sync"

// cache memoizes computed results by key. It is safe for concurrent use.
// Two goroutines missing the same key may both compute it; the values are
// identical so the last store wins.
type cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

func newCache[K comparable, V any]() *cache[K, V] {
	return &cache[K, V]{entries: make(map[K]V)}
}

// getOrCompute returns the value stored for key, computing and storing it on
// the first request.
func (c *cache[K, V]) getOrCompute(key K, compute func() V) V {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = compute()

	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v
}

// len returns the number of stored entries.
func (c *cache[K, V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
