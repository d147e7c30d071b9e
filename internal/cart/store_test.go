package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

var (
	productA = Product{ID: 1, Name: "Classic White T-Shirt", ImageURL: "https://img/1", PriceCents: 1999, Size: "M", Color: "White"}
	productB = Product{ID: 2, Name: "Denim Jacket", ImageURL: "https://img/2", PriceCents: 500, Size: "L", Color: "Blue"}
)

func newTestStore(t *testing.T) (*Store, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	return New(context.Background(), storage, "cart:test", zerolog.Nop()), storage
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	for _, qty := range []int{0, -1, -100} {
		if err := s.AddItem(context.Background(), productA, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
	if s.Count() != 0 || len(s.Lines()) != 0 {
		t.Fatalf("rejected add must not mutate state")
	}
}

func TestAddItemDistinctProductsKeepOrder(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.AddItem(context.Background(), productB, 1); err != nil {
		t.Fatalf("add B: %v", err)
	}
	if err := s.AddItem(context.Background(), productA, 2); err != nil {
		t.Fatalf("add A: %v", err)
	}

	lines := s.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != productB.ID || lines[1].ProductID != productA.ID {
		t.Fatalf("lines not in first-add order: %+v", lines)
	}
	if s.Count() != 3 {
		t.Fatalf("expected count 3, got %d", s.Count())
	}
}

func TestAddItemSameProductIncrements(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddItem(context.Background(), productA, 2)
	_ = s.AddItem(context.Background(), productA, 3)

	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
}

func TestAddItemSnapshotsDisplayFields(t *testing.T) {
	s, _ := newTestStore(t)
	p := productA
	_ = s.AddItem(context.Background(), p, 1)

	// Mutating the descriptor afterwards must not leak into the line.
	p.Name = "Renamed"
	p.PriceCents = 9999

	line := s.Lines()[0]
	if line.Name != "Classic White T-Shirt" || line.UnitPriceCents != 1999 {
		t.Fatalf("line did not snapshot product fields: %+v", line)
	}
	if line.Size != "M" || line.Color != "White" || line.ImageURL != "https://img/1" {
		t.Fatalf("missing display fields: %+v", line)
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddItem(context.Background(), productA, 2)
	s.UpdateQuantity(context.Background(), productA.ID, 7)

	if got := s.Lines()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity 7, got %d", got)
	}
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		s, _ := newTestStore(t)
		_ = s.AddItem(context.Background(), productA, 2)
		_ = s.AddItem(context.Background(), productB, 1)

		before := s.Count()
		s.UpdateQuantity(context.Background(), productA.ID, qty)

		if len(s.Lines()) != 1 {
			t.Fatalf("quantity %d: expected line removed", qty)
		}
		if s.Count() != before-2 {
			t.Fatalf("quantity %d: count should drop by prior line quantity, got %d", qty, s.Count())
		}
	}
}

func TestUpdateQuantityAbsentIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddItem(context.Background(), productA, 2)

	linesBefore, countBefore, totalBefore := s.Lines(), s.Count(), s.Subtotal()
	s.UpdateQuantity(context.Background(), 999, 5)

	if len(s.Lines()) != len(linesBefore) || s.Count() != countBefore || s.Subtotal() != totalBefore {
		t.Fatalf("update on absent id mutated state")
	}
}

func TestRemoveItemIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddItem(context.Background(), productA, 1)

	s.RemoveItem(context.Background(), productA.ID)
	s.RemoveItem(context.Background(), productA.ID)

	if len(s.Lines()) != 0 || s.Count() != 0 {
		t.Fatalf("expected empty cart after removes")
	}
}

func TestClearEmptiesEverything(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddItem(context.Background(), productA, 4)
	_ = s.AddItem(context.Background(), productB, 2)

	s.Clear(context.Background())

	if s.Count() != 0 || s.Subtotal() != 0 || len(s.Lines()) != 0 {
		t.Fatalf("clear left state behind: count=%d subtotal=%d", s.Count(), s.Subtotal())
	}
}

func TestSubtotalWorkedExample(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddItem(context.Background(), productA, 2) // 19.99 x 2
	_ = s.AddItem(context.Background(), productB, 1) // 5.00 x 1

	if s.Count() != 3 {
		t.Fatalf("expected count 3, got %d", s.Count())
	}
	if s.Subtotal() != 4498 {
		t.Fatalf("expected subtotal 4498 cents, got %d", s.Subtotal())
	}

	s.UpdateQuantity(context.Background(), productA.ID, 1)
	if s.Subtotal() != 2499 {
		t.Fatalf("expected subtotal 2499 cents, got %d", s.Subtotal())
	}

	s.RemoveItem(context.Background(), productB.ID)
	if s.Subtotal() != 1999 || s.Count() != 1 {
		t.Fatalf("expected 1999 cents and count 1, got %d and %d", s.Subtotal(), s.Count())
	}
}

func TestRoundTripThroughStorage(t *testing.T) {
	storage := NewMemoryStorage()
	s := New(context.Background(), storage, "cart:session", zerolog.Nop())
	_ = s.AddItem(context.Background(), productA, 2)
	_ = s.AddItem(context.Background(), productB, 1)

	// Simulated reload: a fresh store on the same key.
	restored := New(context.Background(), storage, "cart:session", zerolog.Nop())

	want := s.Lines()
	got := restored.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines after restore, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d mismatch: want %+v got %+v", i, want[i], got[i])
		}
	}
	if restored.Subtotal() != s.Subtotal() || restored.Count() != s.Count() {
		t.Fatalf("derived totals differ after restore")
	}
}

func TestRestoreDiscardsMalformedSnapshot(t *testing.T) {
	storage := NewMemoryStorage()
	cases := map[string]string{
		"garbage":           `{{{`,
		"zero quantity":     `{"items":[{"id":1,"name":"x","price":1.00,"quantity":0}]}`,
		"negative price":    `{"items":[{"id":1,"name":"x","price":-1.00,"quantity":1}]}`,
		"duplicate product": `{"items":[{"id":1,"price":1.00,"quantity":1},{"id":1,"price":1.00,"quantity":2}]}`,
	}
	for name, raw := range cases {
		if err := storage.Save(context.Background(), "cart:bad", []byte(raw)); err != nil {
			t.Fatalf("%s: save: %v", name, err)
		}
		s := New(context.Background(), storage, "cart:bad", zerolog.Nop())
		if len(s.Lines()) != 0 {
			t.Fatalf("%s: expected empty store, got %+v", name, s.Lines())
		}
	}
}

type failingStorage struct {
	loadErr error
	saveErr error
}

func (f *failingStorage) Load(_ context.Context, _ string) ([]byte, error) {
	return nil, f.loadErr
}

func (f *failingStorage) Save(_ context.Context, _ string, _ []byte) error {
	return f.saveErr
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	storage := &failingStorage{
		loadErr: errors.New("storage disabled"),
		saveErr: errors.New("quota exceeded"),
	}
	s := New(context.Background(), storage, "cart:test", zerolog.Nop())

	if err := s.AddItem(context.Background(), productA, 2); err != nil {
		t.Fatalf("persist failure must not reject the mutation: %v", err)
	}
	if s.Count() != 2 || s.Subtotal() != 3998 {
		t.Fatalf("in-memory state lost after failed persist: count=%d", s.Count())
	}
}

func TestSubscribersNotifiedSynchronously(t *testing.T) {
	s, _ := newTestStore(t)

	var got []Summary
	unsubscribe := s.Subscribe(func(sum Summary) {
		got = append(got, sum)
	})

	_ = s.AddItem(context.Background(), productA, 2)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if got[0].Count != 2 || got[0].SubtotalCents != 3998 {
		t.Fatalf("unexpected summary %+v", got[0])
	}

	s.UpdateQuantity(context.Background(), productA.ID, 1)
	s.RemoveItem(context.Background(), productA.ID)
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[2].Count != 0 || len(got[2].Lines) != 0 {
		t.Fatalf("final summary should be empty: %+v", got[2])
	}

	unsubscribe()
	s.Clear(context.Background())
	if len(got) != 3 {
		t.Fatalf("unsubscribed callback still invoked")
	}
}

func TestNoOpMutationsDoNotNotify(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddItem(context.Background(), productA, 1)

	calls := 0
	s.Subscribe(func(Summary) { calls++ })

	s.UpdateQuantity(context.Background(), 999, 3)
	s.RemoveItem(context.Background(), 999)

	if calls != 0 {
		t.Fatalf("no-op mutations must not notify, got %d calls", calls)
	}
}
