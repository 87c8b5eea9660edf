package store

import "errors"

// Option configures a Store at construction time.
type Option[K comparable, V any] func(*Store[K, V]) error

// WithOnEvict registers a callback for entries removed by eviction, Remove,
// RemoveOldest, Purge or Resize. Replacing a value with Set does not call it.
// A store takes a single callback; a second WithOnEvict fails construction.
func WithOnEvict[K comparable, V any](onEvict EvictCallback[K, V]) Option[K, V] {
	return func(s *Store[K, V]) error {
		if onEvict == nil {
			return errors.New("onEvict callback must not be nil")
		}
		if s.onEvict != nil {
			return ErrOnEvictSet
		}
		s.onEvict = onEvict
		return nil
	}
}

// WithValidator sets the domain constraint applied to every value passed to Set.
func WithValidator[K comparable, V any](validate func(V) error) Option[K, V] {
	return func(s *Store[K, V]) error {
		if validate == nil {
			return errors.New("validator must not be nil")
		}
		s.validate = validate
		return nil
	}
}

// WithEqual sets the equality used by Set to recognise an unchanged value.
// Without it every Set on a present key replaces the entry.
func WithEqual[K comparable, V any](equal func(a, b V) bool) Option[K, V] {
	return func(s *Store[K, V]) error {
		if equal == nil {
			return errors.New("equal func must not be nil")
		}
		s.equal = equal
		return nil
	}
}

// Comparable returns the == operator for comparable value types,
// for use with WithEqual.
func Comparable[V comparable](a, b V) bool {
	return a == b
}
