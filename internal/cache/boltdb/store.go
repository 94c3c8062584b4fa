// Package boltdb implements the cache store on a bbolt database, the
// persistent backend used in production deployments.
package boltdb

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"calendar-gateway/internal/cache"
)

var (
	entriesBucket = []byte("entries")
	expiryBucket  = []byte("expiry")
)

// Store is a bbolt-backed cache.Store. Values live in the entries bucket,
// their expiry timestamps in a sibling bucket, and both are always written
// and deleted inside the same transaction.
type Store struct {
	db     *bolt.DB
	prefix string
}

// New opens (or creates) the database at path. The prefix namespaces every
// key this store touches.
func New(path, prefix string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("could not open cache db %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(entriesBucket); err != nil {
			return fmt.Errorf("unable to create entries bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(expiryBucket); err != nil {
			return fmt.Errorf("unable to create expiry bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, prefix: prefix}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// WithPrefix returns a view over the same database under a different key
// namespace. Closing either view closes the shared database.
func (s *Store) WithPrefix(prefix string) *Store {
	return &Store{db: s.db, prefix: prefix}
}

func (s *Store) key(key string) []byte {
	return []byte(s.prefix + key)
}

// Get returns the value for key if present and unexpired. An expired entry
// is removed lazily and reported as a miss.
func (s *Store) Get(key string) ([]byte, bool) {
	k := s.key(key)

	var value []byte
	expired := false

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(expiryBucket).Get(k)
		if raw == nil {
			return nil
		}
		expiresAt, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil || time.Now().Unix() > expiresAt {
			expired = true
			return nil
		}
		if v := tx.Bucket(entriesBucket).Get(k); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false
	}

	if expired {
		_ = s.Delete(key)
		return nil, false
	}
	if value == nil {
		return nil, false
	}
	return value, true
}

// Set writes value under key with the given ttl.
func (s *Store) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	k := s.key(key)
	expiresAt := strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(entriesBucket).Put(k, value); err != nil {
			return err
		}
		return tx.Bucket(expiryBucket).Put(k, []byte(expiresAt))
	})
}

// Delete removes the entry and its expiry record.
func (s *Store) Delete(key string) error {
	k := s.key(key)
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(entriesBucket).Delete(k); err != nil {
			return err
		}
		return tx.Bucket(expiryBucket).Delete(k)
	})
}

// ClearAll removes every prefixed entry and expiry record in a single
// transaction and returns the number of primary entries removed.
func (s *Store) ClearAll() (int, error) {
	deleted := 0
	prefix := []byte(s.prefix)

	err := s.db.Update(func(tx *bolt.Tx) error {
		n, err := deletePrefix(tx.Bucket(entriesBucket), prefix)
		if err != nil {
			return err
		}
		deleted = n
		_, err = deletePrefix(tx.Bucket(expiryBucket), prefix)
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// Stats counts the primary entries under the prefix.
func (s *Store) Stats() (cache.Stats, error) {
	total := 0
	prefix := []byte(s.prefix)

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(entriesBucket).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			total++
		}
		return nil
	})
	if err != nil {
		return cache.Stats{}, err
	}
	return cache.Stats{TotalCached: total, Prefix: s.prefix}, nil
}

func deletePrefix(b *bolt.Bucket, prefix []byte) (int, error) {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	for _, k := range keys {
		if err := b.Delete(k); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}
