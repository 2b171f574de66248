// Package cache provides a process-wide TTL memoization store for the
// payroll computation pipeline. Entries are keyed by (operation, scope)
// where scope is typically a "YYYY-MM" period identifier.
//
// The cache is a latency optimization only: every consumer must produce
// the same value with the cache disabled. Two goroutines racing to
// populate the same key both compute and the last write wins, which is
// acceptable because recomputation is idempotent.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Key builds the canonical cache key for an operation scoped to a period.
func Key(operation, scope string) string {
	return operation + ":" + scope
}

// Get returns the cached value for key if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl disables caching
// for this call.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops every entry. Used by tests and the idempotence checks.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Sweep removes expired entries and reports how many were dropped.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrCompute returns the cached value for (operation, scope) or runs
// compute, stores the result for ttl and returns it. Errors are never
// cached. A nil cache always computes, so callers can run uncached.
func GetOrCompute[T any](c *Cache, operation, scope string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if c == nil {
		return compute()
	}

	key := Key(operation, scope)
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, value, ttl)
	return value, nil
}
