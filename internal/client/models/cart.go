package models

// CartItem is a product with the quantity currently in the cart.
// Quantity is always >= 1; dropping to zero removes the item instead.
// Cart contents live in memory only and do not survive a restart.
type CartItem struct {
	Product  Product
	Quantity int
}

// TotalPrice is the line total for this item.
func (i CartItem) TotalPrice() float64 {
	return i.Product.Price * float64(i.Quantity)
}
