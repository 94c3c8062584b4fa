// Package cache defines the TTL key/value store used for calendar query
// results. Keys are namespaced by a store-wide prefix so an administrative
// bulk clear never touches unrelated records in a shared backing store.
package cache

import "time"

// DefaultTTL is the validity window applied when a caller does not pass an
// explicit TTL.
const DefaultTTL = 1800 * time.Second

// Stats describes the current cache population.
type Stats struct {
	TotalCached int    `json:"total_cached"`
	Prefix      string `json:"prefix"`
}

// Store is a prefix-namespaced TTL key/value store.
type Store interface {
	// Get returns the unexpired value for key. The boolean distinguishes a
	// miss from a legitimately cached empty value.
	Get(key string) ([]byte, bool)

	// Set writes value under key. A non-positive ttl falls back to
	// DefaultTTL.
	Set(key string, value []byte, ttl time.Duration) error

	// Delete removes a single entry.
	Delete(key string) error

	// ClearAll removes every entry under the store's prefix, including any
	// sibling expiry metadata, and returns the number of primary entries
	// removed.
	ClearAll() (int, error)

	// Stats reports the number of primary entries under the prefix.
	Stats() (Stats, error)
}
