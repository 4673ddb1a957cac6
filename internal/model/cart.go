package model

// DefaultSize is the size assigned to a cart line when the shopper has
// not picked one yet.
const DefaultSize = "M"

// CartLine is a product the shopper intends to purchase, together with
// the chosen quantity, size and colour. At most one line exists per
// product ID.
type CartLine struct {
	Product
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

// NewCartLine builds the initial line for a product: quantity 1, the
// default size and the product's first listed colour.
func NewCartLine(p Product) CartLine {
	color := ""
	if len(p.Colors) > 0 {
		color = p.Colors[0]
	}
	return CartLine{
		Product:       p,
		Quantity:      1,
		SelectedSize:  DefaultSize,
		SelectedColor: color,
	}
}

// CartView is the cart as exposed to clients: the current lines in
// insertion order and the derived total.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}
