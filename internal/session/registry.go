package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fashionstore/internal/cache"
	"fashionstore/internal/cart"
)

// Registry maps opaque session tokens to live cart stores. Stores are
// restored lazily from snapshot storage on first touch and kept warm in an
// expiring cache; eviction only drops the in-memory handle, the persisted
// snapshot stays behind for the next touch.
type Registry struct {
	mu      sync.Mutex
	storage cart.Storage
	cache   cache.Service
	ttl     time.Duration
	log     zerolog.Logger
}

func NewRegistry(storage cart.Storage, c cache.Service, ttl time.Duration, log zerolog.Logger) *Registry {
	return &Registry{storage: storage, cache: c, ttl: ttl, log: log}
}

// NewToken mints a fresh session token.
func (r *Registry) NewToken() string {
	return uuid.NewString()
}

// Store returns the cart store for token, creating and restoring it if no
// live handle exists. Each access refreshes the session TTL.
func (r *Registry) Store(ctx context.Context, token string) *cart.Store {
	key := "session:" + token
	if v, ok := r.cache.Get(key); ok {
		store := v.(*cart.Store)
		r.cache.Set(key, store, r.ttl)
		return store
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.cache.Get(key); ok {
		store := v.(*cart.Store)
		r.cache.Set(key, store, r.ttl)
		return store
	}

	store := cart.New(ctx, r.storage, "cart:"+token, r.log)
	log := r.log.With().Str("session", token).Logger()
	store.Subscribe(func(sum cart.Summary) {
		log.Debug().
			Int("lines", len(sum.Lines)).
			Int("count", sum.Count).
			Int64("subtotal_cents", sum.SubtotalCents).
			Msg("cart updated")
	})
	r.cache.Set(key, store, r.ttl)
	return store
}
