package domain

// CartItem is one line of a cart. Identity is the (ProductID,
// SelectedColor, SelectedSize) triple; the ledger keeps that triple unique
// across the collection. Price is frozen at add time and never re-derived
// from the product. The JSON shape is the persisted storage layout and
// must round-trip exactly.
type CartItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	SelectedColor string  `json:"selectedColor"`
	SelectedSize  string  `json:"selectedSize"`
	Quantity      int     `json:"quantity"`
	ProductID     string  `json:"productId"`
}

// Matches reports whether the item carries the given composite key.
func (i CartItem) Matches(productID, color, size string) bool {
	return i.ProductID == productID && i.SelectedColor == color && i.SelectedSize == size
}

// Subtotal of this line alone.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
