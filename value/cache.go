package value

import "sync"

// Cache is a single-slot memo safe for concurrent use.
// The zero value is empty.
type Cache[T any] struct {
	mu     sync.Mutex
	value  T
	filled bool
}

// Get returns the memoised value, calling fill first when empty.
// fill runs with the cache locked and must not touch the same cache.
func (c *Cache[T]) Get(fill func() T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.filled {
		c.value = fill()
		c.filled = true
	}
	return c.value
}

// Peek returns the memoised value without filling.
func (c *Cache[T]) Peek() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.filled
}

// Reset empties the cache and reports whether it held a value.
func (c *Cache[T]) Reset() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.filled {
		return false
	}
	var zero T
	c.value = zero
	c.filled = false
	return true
}
