package dto

// Product is the catalog shape the storefront decodes. Only the fields the
// cart needs are spelled out; list endpoints are streamed through untouched.
type Product struct {
	ProductID     string   `json:"productId"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Images        []string `json:"images"`
	StockQuantity int      `json:"stockQuantity"`
}

// FirstImage is the display snapshot stored on the cart line.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
