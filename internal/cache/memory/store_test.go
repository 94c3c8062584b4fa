package memory_test

import (
	"testing"
	"time"

	"calendar-gateway/internal/cache/memory"
)

func TestMemoryStore(t *testing.T) {
	t.Run("Set And Get", func(t *testing.T) {
		store := memory.New(8, "gcal_cache_")

		if err := store.Set("k1", []byte("v1"), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		got, ok := store.Get("k1")
		if !ok || string(got) != "v1" {
			t.Errorf("unexpected get result: %q, %v", got, ok)
		}
	})

	t.Run("Miss", func(t *testing.T) {
		store := memory.New(8, "gcal_cache_")
		if _, ok := store.Get("absent"); ok {
			t.Errorf("expected miss")
		}
	})

	t.Run("Per Entry TTL Is Honored", func(t *testing.T) {
		store := memory.New(8, "gcal_cache_")

		store.Set("short", []byte("v"), 10*time.Millisecond)
		store.Set("long", []byte("v"), time.Minute)

		time.Sleep(20 * time.Millisecond)

		if _, ok := store.Get("short"); ok {
			t.Errorf("expected short-ttl entry to expire")
		}
		if _, ok := store.Get("long"); !ok {
			t.Errorf("expected long-ttl entry to survive")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store := memory.New(8, "gcal_cache_")

		store.Set("k1", []byte("v"), time.Minute)
		store.Delete("k1")
		if _, ok := store.Get("k1"); ok {
			t.Errorf("expected miss after delete")
		}
	})

	t.Run("ClearAll And Stats", func(t *testing.T) {
		store := memory.New(8, "gcal_cache_")

		store.Set("k1", []byte("a"), time.Minute)
		store.Set("k2", []byte("b"), time.Minute)

		stats, _ := store.Stats()
		if stats.TotalCached != 2 || stats.Prefix != "gcal_cache_" {
			t.Errorf("unexpected stats %+v", stats)
		}

		deleted, err := store.ClearAll()
		if err != nil {
			t.Fatalf("clear failed: %v", err)
		}
		if deleted != 2 {
			t.Errorf("expected 2 deleted, got %d", deleted)
		}
		if _, ok := store.Get("k1"); ok {
			t.Errorf("expected miss after clear")
		}
	})

	t.Run("Capacity Eviction", func(t *testing.T) {
		store := memory.New(2, "gcal_cache_")

		store.Set("k1", []byte("a"), time.Minute)
		store.Set("k2", []byte("b"), time.Minute)
		store.Set("k3", []byte("c"), time.Minute)

		stats, _ := store.Stats()
		if stats.TotalCached != 2 {
			t.Errorf("expected LRU bound of 2, got %d", stats.TotalCached)
		}
		if _, ok := store.Get("k3"); !ok {
			t.Errorf("newest entry must survive eviction")
		}
	})
}
