// Package lrustore provides a fixed-capacity LRU cache safe for concurrent use.
//
// Cache wraps a store.Store behind a single lock held for the whole of each
// call, so the recency list and its index are never observed mid-splice.
package lrustore

import (
	"sync"

	"lrustore/store"
)

const (
	// DefaultEvictedBufferSize defines the default buffer size to store evicted key/val
	DefaultEvictedBufferSize = 16
)

var (
	// ErrInvalidCapacity is returned for a capacity below one.
	ErrInvalidCapacity = store.ErrInvalidCapacity

	// ErrInvalidValue is returned when the configured validator rejects a value.
	ErrInvalidValue = store.ErrInvalidValue

	// ErrOnEvictSet is returned by NewWithOnEvict when opts carry a store.WithOnEvict too.
	ErrOnEvictSet = store.ErrOnEvictSet
)

var _ store.LRU[string, int] = (*Cache[string, int])(nil)

// Cache is a thread-safe fixed size LRU cache.
type Cache[K comparable, V any] struct {
	lru           *store.Store[K, V]
	evictedKeys   []K
	evictedValues []V
	onEvict       func(key K, value V)
	lock          sync.RWMutex
}

// New creates a Cache holding at most capacity keys.
func New[K comparable, V any](capacity int, opts ...store.Option[K, V]) (*Cache[K, V], error) {
	return NewWithOnEvict[K, V](capacity, nil, opts...)
}

// NewWithOnEvict creates a Cache whose onEvict callback runs after the lock
// is released, so it may call back into the cache. Passing store.WithOnEvict
// in opts as well fails with ErrOnEvictSet.
func NewWithOnEvict[K comparable, V any](capacity int, onEvict func(key K, value V), opts ...store.Option[K, V]) (*Cache[K, V], error) {
	c := &Cache[K, V]{onEvict: onEvict}
	if onEvict != nil {
		c.initEvictBuffers()
		opts = append(opts[:len(opts):len(opts)], store.WithOnEvict[K, V](c.onEvictCB))
	}
	lru, err := store.New[K, V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	c.lru = lru
	return c, nil
}

func (c *Cache[K, V]) initEvictBuffers() {
	c.evictedKeys = make([]K, 0, DefaultEvictedBufferSize)
	c.evictedValues = make([]V, 0, DefaultEvictedBufferSize)
}

func (c *Cache[K, V]) onEvictCB(key K, value V) {
	c.evictedKeys = append(c.evictedKeys, key)
	c.evictedValues = append(c.evictedValues, value)
}

// takeEvicted hands over the buffered evictions. Has to be called with lock!
func (c *Cache[K, V]) takeEvicted() (keys []K, values []V) {
	if c.onEvict == nil || len(c.evictedKeys) == 0 {
		return nil, nil
	}
	keys, values = c.evictedKeys, c.evictedValues
	c.initEvictBuffers()
	return keys, values
}

// notify runs onEvict for entries taken with takeEvicted. Must be called without lock.
func (c *Cache[K, V]) notify(keys []K, values []V) {
	for i := range keys {
		c.onEvict(keys[i], values[i])
	}
}

// Set stores value under key, returns true if an eviction occurred and
// updates the recency of usage of the key.
func (c *Cache[K, V]) Set(key K, value V) (evicted bool, err error) {
	c.lock.Lock()
	evicted, err = c.lru.Set(key, value)
	keys, values := c.takeEvicted()
	c.lock.Unlock()
	c.notify(keys, values)
	return evicted, err
}

// Get returns key's value and marks it most recently used. A hit reorders
// the recency list, so it takes the write lock.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.lru.Get(key)
}

// Contains reports whether key is cached, leaving its recency alone.
func (c *Cache[K, V]) Contains(key K) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.lru.Contains(key)
}

// Peek returns key's value, leaving its recency alone.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.lru.Peek(key)
}

// ContainsOrAdd checks if a key is in the cache without updating the
// recency of usage, and if not, adds the value.
// Returns whether it was found and whether an eviction occurred.
func (c *Cache[K, V]) ContainsOrAdd(key K, value V) (ok, evicted bool, err error) {
	c.lock.Lock()
	if c.lru.Contains(key) {
		c.lock.Unlock()
		return true, false, nil
	}
	evicted, err = c.lru.Set(key, value)
	keys, values := c.takeEvicted()
	c.lock.Unlock()
	c.notify(keys, values)
	return false, evicted, err
}

// PeekOrAdd checks if a key is in the cache without updating the
// recency of usage, and if not, adds the value.
// Returns key's previous value if it was found, whether found and whether an eviction occurred.
func (c *Cache[K, V]) PeekOrAdd(key K, value V) (prev V, ok, evicted bool, err error) {
	c.lock.Lock()
	prev, ok = c.lru.Peek(key)
	if ok {
		c.lock.Unlock()
		return prev, true, false, nil
	}
	evicted, err = c.lru.Set(key, value)
	keys, values := c.takeEvicted()
	c.lock.Unlock()
	c.notify(keys, values)
	return prev, false, evicted, err
}

// Remove removes an entry from the cache with the key specified.
// ok specifies if the key was found or not.
func (c *Cache[K, V]) Remove(key K) (ok bool) {
	c.lock.Lock()
	ok = c.lru.Remove(key)
	keys, values := c.takeEvicted()
	c.lock.Unlock()
	c.notify(keys, values)
	return ok
}

// RemoveOldest removes the least recently used entry from the cache.
func (c *Cache[K, V]) RemoveOldest() (key K, value V, ok bool) {
	c.lock.Lock()
	key, value, ok = c.lru.RemoveOldest()
	keys, values := c.takeEvicted()
	c.lock.Unlock()
	c.notify(keys, values)
	return key, value, ok
}

// GetOldest returns the eviction candidate without touching it.
func (c *Cache[K, V]) GetOldest() (K, V, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.lru.GetOldest()
}

// Keys lists cached keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.lru.Keys()
}

// Values lists cached values in the same order as Keys.
func (c *Cache[K, V]) Values() []V {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.lru.Values()
}

// Len returns the number of cached keys.
func (c *Cache[K, V]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.lru.Len()
}

// Cap returns the capacity last set by New or Resize.
func (c *Cache[K, V]) Cap() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.lru.Cap()
}

// Purge clears all the cache entries.
func (c *Cache[K, V]) Purge() {
	c.lock.Lock()
	c.lru.Purge()
	keys, values := c.takeEvicted()
	c.lock.Unlock()
	c.notify(keys, values)
}

// Resize changes the cache capacity, returning number of evicted entries.
func (c *Cache[K, V]) Resize(capacity int) (evicted int, err error) {
	c.lock.Lock()
	evicted, err = c.lru.Resize(capacity)
	keys, values := c.takeEvicted()
	c.lock.Unlock()
	c.notify(keys, values)
	return evicted, err
}
