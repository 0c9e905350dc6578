package cart

import "github.com/google/uuid"

type OutcomeKind string

const (
	OutcomeAdded         OutcomeKind = "added"
	OutcomeUpdated       OutcomeKind = "updated"
	OutcomeRemoved       OutcomeKind = "removed"
	OutcomeCleared       OutcomeKind = "cleared"
	OutcomeRejectedStock OutcomeKind = "rejected_stock"
	OutcomeNoop          OutcomeKind = "noop"
)

// Outcome describes what a transition did, so callers can notify the user
// without the transition knowing anything about notifications.
type Outcome struct {
	Kind      OutcomeKind
	ProductID string
	Name      string
	Quantity  int // resulting line quantity, or the rejected request
	Stock     int // known stock ceiling, set on rejections
}

// Mutated reports whether the transition changed the cart.
func (o Outcome) Mutated() bool {
	switch o.Kind {
	case OutcomeAdded, OutcomeUpdated, OutcomeRemoved, OutcomeCleared:
		return true
	}
	return false
}

// AddItem merges quantity into an existing line for the product or appends a
// new line. A request whose resulting quantity would exceed the product's
// known stock is rejected whole: no partial fulfillment, cart unchanged.
// On a successful merge the stock ceiling is refreshed to the latest known
// stock.
func AddItem(c Cart, p Product, quantity int) (Cart, Outcome) {
	if quantity < 1 {
		quantity = 1
	}

	if i := c.find(p.ID); i >= 0 {
		newQuantity := c.Lines[i].Quantity + quantity
		if newQuantity > p.StockQuantity {
			return c, Outcome{
				Kind:      OutcomeRejectedStock,
				ProductID: p.ID,
				Name:      c.Lines[i].Name,
				Quantity:  newQuantity,
				Stock:     p.StockQuantity,
			}
		}

		next := clone(c)
		next.Lines[i].Quantity = newQuantity
		next.Lines[i].StockCeiling = p.StockQuantity
		return next, Outcome{
			Kind:      OutcomeAdded,
			ProductID: p.ID,
			Name:      next.Lines[i].Name,
			Quantity:  newQuantity,
		}
	}

	if quantity > p.StockQuantity {
		return c, Outcome{
			Kind:      OutcomeRejectedStock,
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  quantity,
			Stock:     p.StockQuantity,
		}
	}

	next := clone(c)
	next.Lines = append(next.Lines, LineItem{
		LineID:       uuid.NewString(),
		ProductID:    p.ID,
		Name:         p.Name,
		UnitPrice:    p.Price,
		ImageURL:     p.ImageURL,
		Quantity:     quantity,
		StockCeiling: p.StockQuantity,
	})
	return next, Outcome{
		Kind:      OutcomeAdded,
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
	}
}

// RemoveItem deletes the line for the product. Removing an absent product is
// a silent no-op.
func RemoveItem(c Cart, productID string) (Cart, Outcome) {
	i := c.find(productID)
	if i < 0 {
		return c, Outcome{Kind: OutcomeNoop, ProductID: productID}
	}

	removed := c.Lines[i]
	next := Cart{Lines: make([]LineItem, 0, len(c.Lines)-1)}
	next.Lines = append(next.Lines, c.Lines[:i]...)
	next.Lines = append(next.Lines, c.Lines[i+1:]...)
	return next, Outcome{
		Kind:      OutcomeRemoved,
		ProductID: productID,
		Name:      removed.Name,
		Quantity:  removed.Quantity,
	}
}

// UpdateQuantity sets the line quantity exactly. A quantity below one removes
// the line; a quantity above the line's stock ceiling is rejected and the
// cart left unchanged.
func UpdateQuantity(c Cart, productID string, quantity int) (Cart, Outcome) {
	if quantity < 1 {
		return RemoveItem(c, productID)
	}

	i := c.find(productID)
	if i < 0 {
		return c, Outcome{Kind: OutcomeNoop, ProductID: productID}
	}

	if quantity > c.Lines[i].StockCeiling {
		return c, Outcome{
			Kind:      OutcomeRejectedStock,
			ProductID: productID,
			Name:      c.Lines[i].Name,
			Quantity:  quantity,
			Stock:     c.Lines[i].StockCeiling,
		}
	}

	next := clone(c)
	next.Lines[i].Quantity = quantity
	return next, Outcome{
		Kind:      OutcomeUpdated,
		ProductID: productID,
		Name:      next.Lines[i].Name,
		Quantity:  quantity,
	}
}

// Clear empties the line sequence.
func Clear(c Cart) (Cart, Outcome) {
	return Cart{}, Outcome{Kind: OutcomeCleared}
}

func clone(c Cart) Cart {
	lines := make([]LineItem, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
