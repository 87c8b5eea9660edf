package store

// LRU is the interface for a fixed-capacity LRU store.
type LRU[K comparable, V any] interface {
	// Get returns key's value and updates the recency of usage of the key.
	// ok specifies if the key was found or not.
	Get(key K) (value V, ok bool)

	// Set stores value under key and updates the recency of usage of the key.
	// Returns true if an eviction occurred.
	Set(key K, value V) (evicted bool, err error)

	// Contains checks if a key exists without updating the recency of usage.
	Contains(key K) (ok bool)

	// Peek returns key's value without updating the recency of usage of the key.
	Peek(key K) (value V, ok bool)

	// Remove removes an entry with the key specified.
	// ok specifies if the key was found or not.
	Remove(key K) (ok bool)

	// RemoveOldest removes the least recently used entry.
	RemoveOldest() (key K, value V, ok bool)

	// GetOldest returns the least recently used entry.
	GetOldest() (key K, value V, ok bool)

	// Keys returns a slice of the keys, from oldest to newest.
	Keys() []K

	// Values returns a slice of the values, from oldest to newest.
	Values() []V

	// Len returns the number of entries.
	Len() int

	// Cap returns the capacity.
	Cap() int

	// Purge clears all the entries.
	Purge()

	// Resize changes the capacity, returning number of evicted entries.
	Resize(capacity int) (evicted int, err error)
}

var _ LRU[string, int] = (*Store[string, int])(nil)
