package cart

import (
	"strings"
	"testing"
)

func TestEncodeSnapshotLayout(t *testing.T) {
	data, err := encodeSnapshot([]Line{
		{ProductID: 7, Name: "Summer Dress", ImageURL: "https://img/7", UnitPriceCents: 5999, Size: "S", Color: "Multicolor", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, want := range []string{`"id":7`, `"image_url":"https://img/7"`, `"price":59.99`, `"quantity":2`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("snapshot missing %s: %s", want, data)
		}
	}
}

func TestDecodeSnapshotRoundTrip(t *testing.T) {
	lines := []Line{
		{ProductID: 1, Name: "Tee", UnitPriceCents: 1999, Quantity: 3},
		{ProductID: 2, Name: "Mug", ImageURL: "https://img/2", UnitPriceCents: 5, Size: "One", Color: "Red", Quantity: 1},
	}
	data, err := encodeSnapshot(lines)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(got))
	}
	for i := range lines {
		if got[i] != lines[i] {
			t.Fatalf("line %d mismatch: want %+v got %+v", i, lines[i], got[i])
		}
	}
}

func TestDecodeSnapshotEmptyRecord(t *testing.T) {
	got, err := decodeSnapshot([]byte(`{"items":[]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no lines, got %+v", got)
	}
}
