package cart

// Line is one row in a cart: the quantity selected plus a snapshot of the
// product's display fields taken at add time. A later price or name change on
// the product does not touch lines already in the cart.
type Line struct {
	ProductID      int64
	Name           string
	ImageURL       string
	UnitPriceCents int64
	Size           string
	Color          string
	Quantity       int
}

// TotalCents is the line subtotal in minor units.
func (l Line) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Product is the descriptor a listing view hands over when adding an item.
// Price and stock are trusted as given.
type Product struct {
	ID         int64
	Name       string
	ImageURL   string
	PriceCents int64
	Size       string
	Color      string
}

// Summary is the derived view delivered to subscribers after every mutation.
type Summary struct {
	Lines         []Line
	Count         int
	SubtotalCents int64
}
