package cart

// LineItem is one product/quantity pairing in the cart. Name, price and image
// are a display snapshot captured when the product was added; they are not
// re-synced when the catalog changes. StockCeiling bounds quantity edits for
// the rest of the session.
//
// Invariant: 1 <= Quantity <= StockCeiling, and at most one line per product.
type LineItem struct {
	LineID       string  `json:"lineId"`
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unitPrice"`
	ImageURL     string  `json:"imageUrl"`
	Quantity     int     `json:"quantity"`
	StockCeiling int     `json:"stockCeiling"`
}

// Product is the slice of the catalog shape the cart depends on.
type Product struct {
	ID            string
	Name          string
	Price         float64
	ImageURL      string
	StockQuantity int
}

// Cart is an ordered sequence of line items, insertion order preserved.
type Cart struct {
	Lines []LineItem
}

func (c Cart) find(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// ItemCount is the sum of all line quantities. Derived, never stored.
func (c Cart) ItemCount() int {
	n := 0
	for _, ln := range c.Lines {
		n += ln.Quantity
	}
	return n
}

// TotalPrice is the sum of unitPrice*quantity over all lines. Derived,
// never stored.
func (c Cart) TotalPrice() float64 {
	total := 0.0
	for _, ln := range c.Lines {
		total += ln.UnitPrice * float64(ln.Quantity)
	}
	return total
}
