package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ocassia/backend/internal/domain"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	t.Run("stores and retrieves a string", func(t *testing.T) {
		if err := c.Set(ctx, "greeting", "hello", time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		value, err := c.Get(ctx, "greeting")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != "hello" {
			t.Errorf("value = %v, want hello", value)
		}
	})

	t.Run("stores typed slices without serialization", func(t *testing.T) {
		entries := []domain.CatalogEntry{{ID: "B09XMTQ6P1", Title: "Serum Kit"}}
		if err := c.Set(ctx, "products", entries, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		value, err := c.Get(ctx, "products")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cached, ok := value.([]domain.CatalogEntry)
		if !ok {
			t.Fatalf("cached value lost its type: %T", value)
		}
		if len(cached) != 1 || cached[0].ID != "B09XMTQ6P1" {
			t.Errorf("cached = %v, want original entries", cached)
		}
	})

	t.Run("overwrites an existing key", func(t *testing.T) {
		c.Set(ctx, "counter", 1, time.Minute)
		c.Set(ctx, "counter", 2, time.Minute)
		value, _ := c.Get(ctx, "counter")
		if value != 2 {
			t.Errorf("value = %v, want 2", value)
		}
	})

	t.Run("missing key returns cache miss", func(t *testing.T) {
		_, err := c.Get(ctx, "nope")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	t.Run("expired entry misses", func(t *testing.T) {
		c.Set(ctx, "ephemeral", "gone soon", 10*time.Millisecond)
		time.Sleep(20 * time.Millisecond)

		_, err := c.Get(ctx, "ephemeral")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after expiry", err)
		}
	})

	t.Run("entry within TTL hits", func(t *testing.T) {
		c.Set(ctx, "fresh", "still here", time.Minute)
		value, err := c.Get(ctx, "fresh")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != "still here" {
			t.Errorf("value = %v, want still here", value)
		}
	})
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "doomed", "bye", time.Minute)
	if err := c.Delete(ctx, "doomed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Get(ctx, "doomed"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("error = %v, want ErrCacheMiss after delete", err)
	}

	t.Run("deleting a missing key is not an error", func(t *testing.T) {
		if err := c.Delete(ctx, "never-existed"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestMemoryCacheExists(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	t.Run("present key exists", func(t *testing.T) {
		c.Set(ctx, "here", true, time.Minute)
		exists, err := c.Exists(ctx, "here")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected key to exist")
		}
	})

	t.Run("missing key does not exist", func(t *testing.T) {
		exists, _ := c.Exists(ctx, "absent")
		if exists {
			t.Error("expected key to not exist")
		}
	})

	t.Run("expired key does not exist", func(t *testing.T) {
		c.Set(ctx, "stale", true, 10*time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		exists, _ := c.Exists(ctx, "stale")
		if exists {
			t.Error("expected expired key to not exist")
		}
	})
}

func TestMemoryCacheSizeAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "a", 1, time.Minute)
	c.Set(ctx, "b", 2, time.Minute)

	if size := c.Size(); size != 2 {
		t.Errorf("Size() = %d, want 2", size)
	}

	c.Clear()
	if size := c.Size(); size != 0 {
		t.Errorf("Size() = %d after Clear, want 0", size)
	}
}
