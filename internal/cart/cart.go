// Package cart implements the shopper's cart: an insertion-ordered set
// of lines, at most one per product.
package cart

import (
	"sync"

	"ethnic-elite/internal/model"
)

// Cart holds the products a shopper intends to purchase. All operations
// are total: unknown IDs and repeated adds are silent no-ops. Safe for
// concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines []model.CartLine
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add appends a new line for the product with quantity 1, the default
// size and the product's first colour. Adding a product already in the
// cart is a no-op; it does not increment the quantity. Returns true if a
// line was added.
func (c *Cart) Add(p model.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		if line.ID == p.ID {
			return false
		}
	}
	c.lines = append(c.lines, model.NewCartLine(p))
	return true
}

// UpdateQuantity adjusts the quantity of the line matching id by delta,
// flooring at 1. Unknown IDs are ignored.
func (c *Cart) UpdateQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			qty := c.lines[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Contains reports whether a line for the product id exists.
func (c *Cart) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		if line.ID == id {
			return true
		}
	}
	return false
}

// Total computes the sum of price x quantity over all lines. It is
// recomputed on every call, never cached.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total()
}

func (c *Cart) total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Items returns a snapshot of the current lines in insertion order.
func (c *Cart) Items() []model.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Snapshot returns the current lines and total atomically, for order
// construction.
func (c *Cart) Snapshot() ([]model.CartLine, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out, c.total()
}

// Clear removes every line from the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
