package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on a cart with no lines.
	ErrEmptyCart = errors.New("cannot checkout with an empty cart")

	// ErrNegativeAmount rejects negative money, stock or weight at construction time.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrNotShippable is returned when a shipping line is derived for a
	// product that does not require shipping.
	ErrNotShippable = errors.New("product does not require shipping")
)

// ProductExpiredError reports a cart line whose product is past its
// expiration date.
type ProductExpiredError struct {
	Product *Product
}

func (e *ProductExpiredError) Error() string {
	return fmt.Sprintf("product %q is expired", e.Product.Name)
}

// OutOfStockError reports a request for more units than are in stock.
type OutOfStockError struct {
	Product   *Product
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %q is out of stock: requested %d, available %d",
		e.Product.Name, e.Requested, e.Available)
}

// InsufficientBalanceError reports a checkout total above the customer's
// balance.
type InsufficientBalanceError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %s",
		e.Required, e.Available)
}

// InvalidQuantityError reports a cart add with a non-positive quantity, or a
// quantity (after merging with an existing line) beyond the product's stock.
type InvalidQuantityError struct {
	Product   *Product
	Requested int
	Available int
}

func (e *InvalidQuantityError) Error() string {
	if e.Requested <= 0 {
		return fmt.Sprintf("invalid quantity %d: must be positive", e.Requested)
	}
	return fmt.Sprintf("not enough stock of %q: requested %d, available %d",
		e.Product.Name, e.Requested, e.Available)
}
