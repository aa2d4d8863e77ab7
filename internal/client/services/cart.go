package services

import (
	"github.com/dmitrijs2005/levelup/internal/client/models"
	"github.com/google/uuid"
)

// Cart is the session-scoped, in-memory line-item aggregator. Items keep
// their insertion order; adding an existing product merges into its line.
// The cart is owned by a single logical caller and is not safe for
// concurrent use; contents are lost on process restart.
type Cart struct {
	items        []models.CartItem
	showSuccess  bool
	lastOrderRef string
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of p into the cart. If a line for p's id already
// exists, its quantity grows by one and the line keeps its position.
func (c *Cart) Add(p models.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.CartItem{Product: p, Quantity: 1})
}

// Remove deletes every line matching the product id. Add's merge rule means
// at most one line should ever match.
func (c *Cart) Remove(productID int64) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// SetQuantity replaces the matching line's quantity in place. A quantity of
// zero or less removes the line. Unknown product ids are ignored.
func (c *Cart) SetQuantity(productID int64, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Purchase empties the cart, raises the one-shot success flag, and returns
// a fresh order reference. There is no payment, stock decrement, or order
// record behind it. Purchasing an empty cart still raises the flag.
func (c *Cart) Purchase() string {
	ref := uuid.NewString()
	c.items = nil
	c.showSuccess = true
	c.lastOrderRef = ref
	return ref
}

// DismissSuccess lowers the success flag after the caller has shown it.
func (c *Cart) DismissSuccess() {
	c.showSuccess = false
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of quantities over all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of line totals.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.TotalPrice()
	}
	return total
}

// ShowSuccess reports whether a purchase success message is pending.
func (c *Cart) ShowSuccess() bool {
	return c.showSuccess
}

// LastOrderRef returns the reference of the most recent purchase, empty
// before the first one.
func (c *Cart) LastOrderRef() string {
	return c.lastOrderRef
}
