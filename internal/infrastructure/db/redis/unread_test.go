package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCounter(t *testing.T) *UnreadCounter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewUnreadCounter(client)
}

func TestUnreadCounter_IncrAndCount(t *testing.T) {
	u := newTestCounter(t)
	ctx := context.Background()

	n, err := u.Count(ctx, "admin", "client1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 for missing key, got %d", n)
	}

	for i := 0; i < 3; i++ {
		if err := u.Incr(ctx, "admin", "client1"); err != nil {
			t.Fatalf("incr: %v", err)
		}
	}

	n, err = u.Count(ctx, "admin", "client1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}

	// direction matters: the reverse key is untouched
	n, err = u.Count(ctx, "client1", "admin")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 for reverse direction, got %d", n)
	}
}

func TestUnreadCounter_Reset(t *testing.T) {
	u := newTestCounter(t)
	ctx := context.Background()

	if err := u.Incr(ctx, "admin", "client1"); err != nil {
		t.Fatalf("incr: %v", err)
	}
	if err := u.Reset(ctx, "admin", "client1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	n, err := u.Count(ctx, "admin", "client1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 after reset, got %d", n)
	}
}

func TestUnreadCounter_ResetMissingKey(t *testing.T) {
	u := newTestCounter(t)
	if err := u.Reset(context.Background(), "admin", "ghost"); err != nil {
		t.Fatalf("reset on missing key should be a no-op, got %v", err)
	}
}
