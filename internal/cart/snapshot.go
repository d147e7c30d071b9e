package cart

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
)

// Persisted snapshot layout. Prices travel as decimal unit prices to match
// the record the storefront clients already write; internally everything is
// integer cents.
type snapshot struct {
	Items []snapshotItem `json:"items"`
}

type snapshotItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Quantity int     `json:"quantity"`
}

func encodeSnapshot(lines []Line) ([]byte, error) {
	snap := snapshot{Items: make([]snapshotItem, 0, len(lines))}
	for _, l := range lines {
		snap.Items = append(snap.Items, snapshotItem{
			ID:       l.ProductID,
			Name:     l.Name,
			ImageURL: l.ImageURL,
			Price:    float64(l.UnitPriceCents) / 100,
			Size:     l.Size,
			Color:    l.Color,
			Quantity: l.Quantity,
		})
	}
	return json.Marshal(snap)
}

// decodeSnapshot parses and validates a persisted record. Any violation of
// the cart invariants poisons the whole record: the caller starts empty
// rather than restoring a partial cart.
func decodeSnapshot(data []byte) ([]Line, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	lines := make([]Line, 0, len(snap.Items))
	seen := make(map[int64]bool, len(snap.Items))
	for _, item := range snap.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("snapshot item %d: quantity %d below 1", item.ID, item.Quantity)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("snapshot item %d: negative price", item.ID)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("snapshot item %d: duplicate product id", item.ID)
		}
		seen[item.ID] = true
		lines = append(lines, Line{
			ProductID:      item.ID,
			Name:           item.Name,
			ImageURL:       item.ImageURL,
			UnitPriceCents: int64(math.Round(item.Price * 100)),
			Size:           item.Size,
			Color:          item.Color,
			Quantity:       item.Quantity,
		})
	}
	return lines, nil
}
