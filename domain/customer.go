package domain

import "github.com/shopspring/decimal"

// Customer holds a name and a spendable balance. The balance never goes
// negative.
type Customer struct {
	Name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) (*Customer, error) {
	if balance.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Customer{Name: name, balance: balance}, nil
}

// Balance returns the current balance.
func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

// HasSufficientBalance reports whether the balance covers amount.
func (c *Customer) HasSufficientBalance(amount decimal.Decimal) bool {
	return c.balance.GreaterThanOrEqual(amount)
}

// DeductBalance subtracts amount from the balance, failing without mutating
// when the balance would go negative.
func (c *Customer) DeductBalance(amount decimal.Decimal) error {
	if amount.GreaterThan(c.balance) {
		return &InsufficientBalanceError{Required: amount, Available: c.balance}
	}
	c.balance = c.balance.Sub(amount)
	return nil
}
