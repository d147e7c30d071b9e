package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fashionstore/internal/cache"
	"fashionstore/internal/cart"
)

func newRegistry() (*Registry, cache.Service) {
	c := cache.NewMemory(time.Minute, time.Minute)
	return NewRegistry(cart.NewMemoryStorage(), c, time.Minute, zerolog.Nop()), c
}

func TestNewTokenIsUUID(t *testing.T) {
	r, _ := newRegistry()
	token := r.NewToken()
	if _, err := uuid.Parse(token); err != nil {
		t.Fatalf("token %q not a uuid: %v", token, err)
	}
	if token == r.NewToken() {
		t.Fatalf("tokens must be unique")
	}
}

func TestStoreReturnsSameHandlePerToken(t *testing.T) {
	r, _ := newRegistry()
	ctx := context.Background()

	a := r.Store(ctx, "tok-1")
	b := r.Store(ctx, "tok-1")
	if a != b {
		t.Fatalf("expected the same store for one token")
	}
}

func TestStoresAreIsolatedPerToken(t *testing.T) {
	r, _ := newRegistry()
	ctx := context.Background()

	first := r.Store(ctx, "tok-1")
	second := r.Store(ctx, "tok-2")
	if err := first.AddItem(ctx, cart.Product{ID: 1, Name: "Tee", PriceCents: 1999}, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	if second.Count() != 0 {
		t.Fatalf("cart state leaked across sessions")
	}
}

func TestEvictedStoreRestoresFromSnapshot(t *testing.T) {
	r, c := newRegistry()
	ctx := context.Background()

	store := r.Store(ctx, "tok-1")
	if err := store.AddItem(ctx, cart.Product{ID: 1, Name: "Tee", PriceCents: 1999}, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Simulate TTL eviction of the live handle.
	c.Delete("session:tok-1")

	restored := r.Store(ctx, "tok-1")
	if restored == store {
		t.Fatalf("expected a fresh handle after eviction")
	}
	if restored.Count() != 2 || restored.Subtotal() != 3998 {
		t.Fatalf("restored cart lost state: count=%d subtotal=%d", restored.Count(), restored.Subtotal())
	}
}
