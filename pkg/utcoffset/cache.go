package utcoffset

import (
	"sync"
	"sync/atomic"
)

// Cache holds at most one Offset shared by every caller that uses it.
// The zero value is an empty cache ready for use.
//
// Reads share a lock and may run concurrently. Writes never wait: once the
// cache is initialized, a write that cannot take the lock immediately fails
// with ErrWriteLock.
type Cache struct {
	once  sync.Once
	ready atomic.Bool
	mu    sync.RWMutex
	value Offset
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached offset, or ErrUninitialized if nothing has been stored.
// Unlike the TrySet methods, Get waits for a read lock.
func (c *Cache) Get() (Offset, error) {
	if !c.ready.Load() {
		return UTC, ErrUninitialized
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value, nil
}

// TrySet stores o. The first call initializes the cache; later calls
// overwrite the stored value only if the write lock is free right now.
func (c *Cache) TrySet(o Offset) error {
	c.once.Do(func() {
		c.mu.Lock()
		c.value = o
		c.mu.Unlock()
		c.ready.Store(true)
	})

	if !c.mu.TryLock() {
		return ErrWriteLock
	}
	defer c.mu.Unlock()

	c.value = o

	return nil
}

// TrySetFromString parses input as [+|-]HH[:]MM and stores it.
//
// Accepted values include "+0900", "-0930", "1000", "+09:00", "-09:30" and "10:00".
func (c *Cache) TrySetFromString(input string) error {
	o, err := Parse(input)
	if err != nil {
		return err
	}

	return c.TrySet(o)
}

// TrySetFromPair stores the offset built from hours in [-12,14] and
// minutes in [0,59]. The cache is left untouched on a validation error.
func (c *Cache) TrySetFromPair(hours, minutes int) error {
	o, err := FromPair(hours, minutes)
	if err != nil {
		return err
	}

	return c.TrySet(o)
}
