package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory_GetSet(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "search:q=tech"); ok {
		t.Error("Expected a miss on an empty cache")
	}

	c.Set(ctx, "search:q=tech", []byte(`{"articles":[]}`))

	value, ok := c.Get(ctx, "search:q=tech")
	if !ok {
		t.Fatal("Expected a hit after Set")
	}
	if string(value) != `{"articles":[]}` {
		t.Errorf("Unexpected cached value: %s", value)
	}
}

func TestMemory_StalenessWindow(t *testing.T) {
	c := NewMemory(20 * time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "dashboard:stats", []byte(`{}`))
	if _, ok := c.Get(ctx, "dashboard:stats"); !ok {
		t.Fatal("Expected a hit inside the staleness window")
	}

	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get(ctx, "dashboard:stats"); ok {
		t.Error("Expected a miss after the staleness window")
	}
	if c.Len() != 0 {
		t.Errorf("Expected the stale entry to be dropped, %d entries left", c.Len())
	}
}

func TestMemory_InvalidateByPrefix(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	c.Set(ctx, "search:q=tech", []byte(`a`))
	c.Set(ctx, "search:q=sports", []byte(`b`))
	c.Set(ctx, "dashboard:stats", []byte(`c`))

	c.Invalidate(ctx, "search:")

	if _, ok := c.Get(ctx, "search:q=tech"); ok {
		t.Error("Expected search entries to be evicted")
	}
	if _, ok := c.Get(ctx, "search:q=sports"); ok {
		t.Error("Expected search entries to be evicted")
	}
	if _, ok := c.Get(ctx, "dashboard:stats"); !ok {
		t.Error("Entries outside the prefix must survive")
	}
}

func TestMemory_SetOverwrites(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	c.Set(ctx, "dashboard:stats", []byte(`old`))
	c.Set(ctx, "dashboard:stats", []byte(`new`))

	value, ok := c.Get(ctx, "dashboard:stats")
	if !ok {
		t.Fatal("Expected a hit")
	}
	if string(value) != "new" {
		t.Errorf("Expected the latest value, got %s", value)
	}
}
