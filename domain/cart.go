package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine pairs a product with the quantity ordered.
type CartLine struct {
	Product  *Product
	Quantity int
}

// LineTotal returns quantity times unit price.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered collection of lines with at most one line per product.
// Line order is insertion order and carries through to the receipt.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of p into the cart, merging with an existing line
// for the same product. It fails without mutating the cart when quantity is
// not positive or when the resulting line would exceed the product's stock.
func (c *Cart) Add(p *Product, quantity int) error {
	if quantity <= 0 {
		return &InvalidQuantityError{Product: p, Requested: quantity, Available: p.Stock}
	}

	merged := quantity
	idx := c.indexOf(p.ID)
	if idx >= 0 {
		merged += c.lines[idx].Quantity
	}
	if !p.IsAvailable(merged) {
		return &InvalidQuantityError{Product: p, Requested: merged, Available: p.Stock}
	}

	if idx >= 0 {
		c.lines[idx].Quantity = merged
		return nil
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: quantity})
	return nil
}

// Remove drops the line for p. It is a no-op when p is not in the cart.
func (c *Cart) Remove(p *Product) {
	idx := c.indexOf(p.ID)
	if idx < 0 {
		return
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a snapshot of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal sums quantity times price over all lines; zero for an empty cart.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (c *Cart) indexOf(id uuid.UUID) int {
	for i, l := range c.lines {
		if l.Product.ID == id {
			return i
		}
	}
	return -1
}
