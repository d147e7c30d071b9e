package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"fashionstore/internal/domain"
)

// ErrInvalidQuantity is returned when a caller passes a non-positive quantity
// to AddItem. The UI should never allow it; treat it as a contract violation.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Store is the single source of truth for one cart: an ordered sequence of
// lines with at most one line per product id. Every mutation persists a
// snapshot and synchronously notifies subscribers before returning. Persist
// failures are logged and swallowed; the in-memory state stays authoritative
// for the session.
type Store struct {
	mu      sync.Mutex
	lines   []Line
	storage Storage
	key     string
	log     zerolog.Logger
	subs    map[int]func(Summary)
	nextSub int
}

// New builds a Store bound to a storage key, restoring the last persisted
// snapshot if one exists and is well-formed. A snapshot that fails to parse
// or violates the cart invariants is discarded and the store starts empty.
func New(ctx context.Context, storage Storage, key string, log zerolog.Logger) *Store {
	s := &Store{
		storage: storage,
		key:     key,
		log:     log.With().Str("cart_key", key).Logger(),
		subs:    make(map[int]func(Summary)),
	}

	data, err := storage.Load(ctx, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		s.log.Error().Err(err).Msg("cart storage unavailable, starting empty")
	default:
		lines, err := decodeSnapshot(data)
		if err != nil {
			s.log.Warn().Err(err).Msg("discarding malformed cart snapshot")
		} else {
			s.lines = lines
		}
	}
	return s
}

// AddItem appends a new line with a snapshot of the product's display fields,
// or increments the quantity of the existing line for the same product id.
func (s *Store) AddItem(ctx context.Context, p Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, Line{
			ProductID:      p.ID,
			Name:           p.Name,
			ImageURL:       p.ImageURL,
			UnitPriceCents: p.PriceCents,
			Size:           p.Size,
			Color:          p.Color,
			Quantity:       quantity,
		})
	}
	summary := s.commitLocked(ctx)
	s.mu.Unlock()

	s.notify(summary)
	return nil
}

// UpdateQuantity sets the line's quantity to exactly quantity; zero or
// negative removes the line. An absent product id is a no-op, not an error,
// so a stale render cannot crash the caller.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	s.mu.Lock()
	idx := -1
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	if quantity <= 0 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	} else {
		s.lines[idx].Quantity = quantity
	}
	summary := s.commitLocked(ctx)
	s.mu.Unlock()

	s.notify(summary)
}

// RemoveItem drops the line for productID if present; otherwise a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int64) {
	s.mu.Lock()
	idx := -1
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	summary := s.commitLocked(ctx)
	s.mu.Unlock()

	s.notify(summary)
}

// Clear empties the cart unconditionally. Used after a placed order and on
// explicit user action.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	summary := s.commitLocked(ctx)
	s.mu.Unlock()

	s.notify(summary)
}

// Lines returns a copy of the line sequence in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count is the sum of quantities across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countLines(s.lines)
}

// Subtotal is the cart subtotal in minor units. Rounding to a display amount
// happens only at presentation.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotalLines(s.lines)
}

// Subscribe registers fn to run synchronously after every mutation. The
// returned func unregisters it.
func (s *Store) Subscribe(fn func(Summary)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// commitLocked persists the current lines and builds the notification
// summary. Callers hold s.mu.
func (s *Store) commitLocked(ctx context.Context) Summary {
	data, err := encodeSnapshot(s.lines)
	if err != nil {
		s.log.Error().Err(err).Msg("encode cart snapshot")
	} else if err := s.storage.Save(ctx, s.key, data); err != nil {
		s.log.Error().Err(err).Msg("persist cart snapshot")
	}

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return Summary{
		Lines:         lines,
		Count:         countLines(s.lines),
		SubtotalCents: subtotalLines(s.lines),
	}
}

func (s *Store) notify(summary Summary) {
	s.mu.Lock()
	fns := make([]func(Summary), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(summary)
	}
}

func countLines(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

func subtotalLines(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalCents()
	}
	return total
}
