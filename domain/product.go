package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductKind tags the product variant.
type ProductKind string

const (
	KindExpiring    ProductKind = "expiring"
	KindNonExpiring ProductKind = "non_expiring"
)

// Product is a catalog item. The Kind tag selects the expiration behavior;
// ExpiresAt is meaningful only for KindExpiring products, and WeightGrams
// only when Shippable is set.
type Product struct {
	ID          uuid.UUID
	Name        string
	Price       decimal.Decimal
	Stock       int
	Kind        ProductKind
	ExpiresAt   time.Time
	Shippable   bool
	WeightGrams float64
}

// NewExpiringProduct creates a product that goes bad after expiresAt, like
// cheese or biscuits.
func NewExpiringProduct(name string, price decimal.Decimal, stock int, expiresAt time.Time, shippable bool, weightGrams float64) (*Product, error) {
	p := &Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Stock:       stock,
		Kind:        KindExpiring,
		ExpiresAt:   expiresAt,
		Shippable:   shippable,
		WeightGrams: weightGrams,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewNonExpiringProduct creates a product with no expiration, like a TV or a
// scratch card.
func NewNonExpiringProduct(name string, price decimal.Decimal, stock int, shippable bool, weightGrams float64) (*Product, error) {
	p := &Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Stock:       stock,
		Kind:        KindNonExpiring,
		Shippable:   shippable,
		WeightGrams: weightGrams,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) validate() error {
	if p.Price.IsNegative() || p.Stock < 0 || p.WeightGrams < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// IsExpiredAt reports whether the product is past its expiration date at the
// given instant. Non-expiring products never expire.
func (p *Product) IsExpiredAt(now time.Time) bool {
	if p.Kind != KindExpiring {
		return false
	}
	return now.After(p.ExpiresAt)
}

// RequiresShipping reports whether the product needs physical shipping.
func (p *Product) RequiresShipping() bool {
	return p.Shippable
}

// IsAvailable reports whether n units are in stock.
func (p *Product) IsAvailable(n int) bool {
	return p.Stock >= n
}

// DecreaseStock removes n units from stock. It fails without mutating when n
// exceeds the current stock.
func (p *Product) DecreaseStock(n int) error {
	if n > p.Stock {
		return &OutOfStockError{Product: p, Requested: n, Available: p.Stock}
	}
	p.Stock -= n
	return nil
}
