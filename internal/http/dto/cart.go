package dto

import "github.com/repticare/storefront/internal/cart"

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is the cart plus its derived aggregates, recomputed on render.
type CartView struct {
	Items      []cart.LineItem `json:"items"`
	ItemCount  int             `json:"itemCount"`
	TotalPrice float64         `json:"totalPrice"`
}

func NewCartView(c cart.Cart) CartView {
	items := c.Lines
	if items == nil {
		items = []cart.LineItem{}
	}
	return CartView{
		Items:      items,
		ItemCount:  c.ItemCount(),
		TotalPrice: c.TotalPrice(),
	}
}

type CartMutationResponse struct {
	Outcome string   `json:"outcome"`
	Message string   `json:"message,omitempty"`
	Cart    CartView `json:"cart"`
}
