// Package cache provides a generic, thread-safe cache bounded by both
// entry count and entry age, with always-on statistics and optional
// Prometheus metrics export.
package cache

import (
	"github.com/JuntinLin/bom-owl-sub002/errors"
)

// Cache is a generic cache keyed by strings.
//
// The similarity layer builds its two pools on this interface: the
// score pool maps item pairs to similarity scores and the result pool
// maps search signatures to ranked result sets. Both pools bound
// entries by count and by age.
type Cache[V any] interface {
	// Get returns the value for key and whether it was present.
	// Expired entries are removed and reported as misses.
	Get(key string) (V, bool)

	// Set stores value under key and reports whether a new entry was
	// created. False means an existing entry was refreshed in place.
	Set(key string, value V) (bool, error)

	// Delete removes the entry for key and reports whether it existed.
	Delete(key string) (bool, error)

	// Clear removes every entry.
	Clear() error

	// Size returns the current number of entries.
	Size() int

	// Keys returns the unexpired keys, most recently used first.
	Keys() []string

	// Stats returns the cache counters. Nil for the noop cache.
	Stats() *Statistics

	// Close stops background maintenance. The cache must not be used
	// after Close returns.
	Close() error
}

// EvictCallback is invoked when an entry leaves the cache through LRU
// eviction, TTL expiry, or Clear. It runs outside the cache lock, so
// it may safely call back into the cache.
type EvictCallback[V any] func(key string, value V)

// validateKey validates a cache key for basic requirements.
// Returns a classified error if the key is invalid.
func validateKey(key string) error {
	if key == "" {
		return errors.WrapInvalid(errors.ErrInvalidData, "cache", "validateKey", "key cannot be empty")
	}
	return nil
}
