package models

// CartItem is a product placed in the cart together with its quantity.
// At most one CartItem exists per product ID; adding the same product again
// increments Quantity instead of inserting a second row.
type CartItem struct {
	Product

	// Quantity is the number of units of this product in the cart.
	// Always >= 1 for any item present; an item decremented to zero is
	// removed from the cart rather than stored with a zero quantity.
	Quantity int64 `json:"quantity"`
}
