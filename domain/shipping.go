package domain

import "fmt"

// ShippingLine is the weight-bearing view of a cart line, derived only for
// products that require shipping.
type ShippingLine struct {
	Label       string  // "{qty}x {name}"
	WeightGrams float64 // per-unit weight scaled by quantity
}

// NewShippingLine derives the shipping view of quantity units of p. Deriving
// one for a product that does not require shipping is a caller error.
func NewShippingLine(p *Product, quantity int) (ShippingLine, error) {
	if !p.RequiresShipping() {
		return ShippingLine{}, ErrNotShippable
	}
	return ShippingLine{
		Label:       fmt.Sprintf("%dx %s", quantity, p.Name),
		WeightGrams: p.WeightGrams * float64(quantity),
	}, nil
}

// ShipmentNotice is the human-readable shipping summary, handed to the
// presentation sink as data.
type ShipmentNotice struct {
	Lines            []ShippingLine
	TotalWeightGrams float64
}

// TotalWeightKg converts the package weight for display.
func (n *ShipmentNotice) TotalWeightKg() float64 {
	return n.TotalWeightGrams / 1000.0
}
