package cart

import (
	"context"
	"sync"

	"fashionstore/internal/domain"
)

// Storage persists serialized cart snapshots under a well-known key. The
// store is the sole writer of its key; concurrent writers from elsewhere get
// last-write-wins semantics.
type Storage interface {
	// Load returns the raw snapshot for key, or domain.ErrNotFound when no
	// snapshot has been saved yet.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// MemoryStorage keeps snapshots in a process-local map.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStorage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.records[key] = stored
	return nil
}
