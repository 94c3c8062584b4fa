package boltdb

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Expiry is tracked at unix-second granularity, so the test rewrites the
// expiry record into the past instead of sleeping.
func TestExpiredEntryIsAMiss(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "cache.db"), "gcal_cache_")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if err := store.Set("k1", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	past := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	err = store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(expiryBucket).Put(store.key("k1"), []byte(past))
	})
	if err != nil {
		t.Fatalf("failed to rewrite expiry: %v", err)
	}

	if _, ok := store.Get("k1"); ok {
		t.Errorf("expected expired entry to miss")
	}

	// The lazy cleanup removed both records.
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalCached != 0 {
		t.Errorf("expected expired entry removed, got %d", stats.TotalCached)
	}
}
