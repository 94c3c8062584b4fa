// Package memory implements the cache store on an expirable LRU, used for
// development and tests where persistence across restarts is not needed.
package memory

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"calendar-gateway/internal/cache"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store is an in-memory cache.Store. The LRU's own TTL acts as an upper
// bound; per-entry expiry is tracked explicitly so Set honors its ttl
// argument.
type Store struct {
	lru    *expirable.LRU[string, entry]
	prefix string
}

// New creates a store holding at most size entries under the given prefix.
func New(size int, prefix string) *Store {
	if size <= 0 {
		size = 1024
	}
	return &Store{
		lru:    expirable.NewLRU[string, entry](size, nil, cache.DefaultTTL),
		prefix: prefix,
	}
}

// Get returns the unexpired value for key.
func (s *Store) Get(key string) ([]byte, bool) {
	e, ok := s.lru.Get(s.prefix + key)
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.lru.Remove(s.prefix + key)
		return nil, false
	}
	return e.value, true
}

// Set writes value under key with the given ttl.
func (s *Store) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	s.lru.Add(s.prefix+key, entry{value: value, expiresAt: time.Now().Add(ttl)})
	return nil
}

// Delete removes a single entry.
func (s *Store) Delete(key string) error {
	s.lru.Remove(s.prefix + key)
	return nil
}

// ClearAll removes every prefixed entry and returns the removed count.
func (s *Store) ClearAll() (int, error) {
	deleted := 0
	for _, k := range s.lru.Keys() {
		if strings.HasPrefix(k, s.prefix) {
			s.lru.Remove(k)
			deleted++
		}
	}
	return deleted, nil
}

// Stats reports the number of entries under the prefix.
func (s *Store) Stats() (cache.Stats, error) {
	total := 0
	for _, k := range s.lru.Keys() {
		if strings.HasPrefix(k, s.prefix) {
			total++
		}
	}
	return cache.Stats{TotalCached: total, Prefix: s.prefix}, nil
}
