// Package store implements a fixed-capacity least-recently-used key-value
// store with O(1) Get and Set.
//
// Entries live in a handle-addressed arena list ordered from most to least
// recently used, and an index maps every key to its handle. A successful Get
// is itself a recency update. Store is not safe for concurrent use; see the
// lrustore package for a locking wrapper.
package store

import (
	"fmt"

	"lrustore/internal"
)

// maxSizeHint bounds up-front allocation; larger stores grow as keys arrive.
const maxSizeHint = 1024

// EvictCallback is used to get a callback when a cache entry is evicted
type EvictCallback[K comparable, V any] func(key K, value V)

// Store implements a non-thread safe fixed size LRU store
type Store[K comparable, V any] struct {
	capacity int
	recency  *internal.RecencyList[K, V]
	index    *internal.Index[K]

	onEvict  EvictCallback[K, V]
	validate func(V) error
	equal    func(a, b V) bool
}

// New constructs a Store holding at most capacity keys.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Store[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d, must be at least 1", ErrInvalidCapacity, capacity)
	}

	hint := min(capacity, maxSizeHint)
	s := &Store[K, V]{
		capacity: capacity,
		recency:  internal.NewRecencyList[K, V](hint),
		index:    internal.NewIndex[K](hint),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Get returns key's value from the store and marks the key most recently used.
// ok is false on a miss, in which case nothing changes.
func (s *Store[K, V]) Get(key K) (value V, ok bool) {
	h, ok := s.index.Lookup(key)
	if !ok {
		return value, false
	}
	s.recency.MoveToFront(h)
	return s.recency.Value(h), true
}

// Set stores value under key and marks the key most recently used.
// It returns true if storing a new key evicted the least recently used one.
// A value rejected by the validator leaves the store unchanged.
func (s *Store[K, V]) Set(key K, value V) (evicted bool, err error) {
	if err := s.check(value); err != nil {
		return false, err
	}
	return s.replaceOrInsert(key, value), nil
}

// check runs the configured validator.
func (s *Store[K, V]) check(value V) error {
	if s.validate == nil {
		return nil
	}
	if err := s.validate(value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return nil
}

// replaceOrInsert is the single write path behind Set. A present key with an
// equal value is touched; a present key with a different value is unlinked
// and reinserted at the front; an absent key is inserted, evicting the back
// entry first when the store is full.
func (s *Store[K, V]) replaceOrInsert(key K, value V) (evicted bool) {
	if h, ok := s.index.Lookup(key); ok {
		if s.equal != nil && s.equal(s.recency.Value(h), value) {
			s.recency.MoveToFront(h)
			return false
		}
		s.recency.Remove(h)
		s.index.Delete(key)
	} else if s.recency.Len() >= s.capacity {
		s.removeOldest()
		evicted = true
	}

	s.index.Put(key, s.recency.PushFront(key, value))
	return evicted
}

// Contains checks if a key exists in the store without updating the recency of usage.
func (s *Store[K, V]) Contains(key K) (ok bool) {
	_, ok = s.index.Lookup(key)
	return ok
}

// Peek returns key's value without updating the recency of usage of the key.
// ok specifies if the key was found or not.
func (s *Store[K, V]) Peek(key K) (value V, ok bool) {
	if h, ok := s.index.Lookup(key); ok {
		return s.recency.Value(h), true
	}
	return value, false
}

// Remove removes an entry from the store with the key specified.
// ok specifies if the key was found or not.
func (s *Store[K, V]) Remove(key K) (ok bool) {
	if h, ok := s.index.Lookup(key); ok {
		s.removeEntry(h)
		return true
	}
	return false
}

// RemoveOldest removes the least recently used entry from the store.
func (s *Store[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if h := s.recency.Back(); h != 0 {
		key, value = s.removeEntry(h)
		return key, value, true
	}
	return key, value, false
}

// GetOldest returns the least recently used entry without touching it.
func (s *Store[K, V]) GetOldest() (key K, value V, ok bool) {
	if h := s.recency.Back(); h != 0 {
		return s.recency.Key(h), s.recency.Value(h), true
	}
	return key, value, false
}

// Keys returns a slice of the keys in the store, from oldest to newest.
func (s *Store[K, V]) Keys() []K {
	keys := make([]K, 0, s.recency.Len())
	for h := s.recency.Back(); h != 0; h = s.recency.Prev(h) {
		keys = append(keys, s.recency.Key(h))
	}
	return keys
}

// Values returns a slice of the values in the store, from oldest to newest.
func (s *Store[K, V]) Values() []V {
	values := make([]V, 0, s.recency.Len())
	for h := s.recency.Back(); h != 0; h = s.recency.Prev(h) {
		values = append(values, s.recency.Value(h))
	}
	return values
}

// Len returns the number of entries in the store.
func (s *Store[K, V]) Len() int {
	return s.recency.Len()
}

// Cap returns the capacity of the store.
func (s *Store[K, V]) Cap() int {
	return s.capacity
}

// Purge clears all the store entries, oldest first.
func (s *Store[K, V]) Purge() {
	if s.onEvict != nil {
		for h := s.recency.Back(); h != 0; h = s.recency.Prev(h) {
			s.onEvict(s.recency.Key(h), s.recency.Value(h))
		}
	}
	s.index.Clear()
	s.recency.Init()
}

// Resize changes the store capacity, returning number of evicted entries.
func (s *Store[K, V]) Resize(capacity int) (evicted int, err error) {
	if capacity < 1 {
		return 0, fmt.Errorf("%w: %d, must be at least 1", ErrInvalidCapacity, capacity)
	}
	for s.recency.Len() > capacity {
		s.removeOldest()
		evicted++
	}
	s.capacity = capacity
	return evicted, nil
}

// removeOldest evicts the back entry, if any.
func (s *Store[K, V]) removeOldest() {
	if h := s.recency.Back(); h != 0 {
		s.removeEntry(h)
	}
}

// removeEntry drops h from both the list and the index and reports it to onEvict.
func (s *Store[K, V]) removeEntry(h internal.Handle) (K, V) {
	key, value := s.recency.Remove(h)
	s.index.Delete(key)
	if s.onEvict != nil {
		s.onEvict(key, value)
	}
	return key, value
}
