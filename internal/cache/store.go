// Package cache provides storage interfaces and implementations for the
// upstream response cache used by the sensormcp service.
package cache

import (
	"errors"
	"time"
)

// ErrMiss is returned by Get when no fresh entry exists for a key.
var ErrMiss = errors.New("cache miss")

// Store defines the interface for caching upstream response bodies.
type Store interface {
	// Initialize initializes the store with configuration options.
	Initialize(dbPath string) error

	// Close closes the store and releases any resources.
	Close() error

	// Get returns the cached body for the key, or ErrMiss when the entry
	// is absent or older than its TTL.
	Get(key string, now time.Time) ([]byte, error)

	// Put stores or replaces the body for the key with the given TTL.
	Put(key string, body []byte, now time.Time, ttl time.Duration) error

	// Count reports the number of entries currently stored, expired or not.
	Count() (int, error)

	// Purge removes entries that expired before now and reports how many
	// rows were deleted.
	Purge(now time.Time) (int, error)

	// Clear removes all entries and reports how many rows were deleted.
	Clear() (int, error)
}
