package domain

import "github.com/shopspring/decimal"

// ReceiptLine is one purchased line as it appears on the receipt.
type ReceiptLine struct {
	Quantity int
	Name     string
	Total    decimal.Decimal
}

// Receipt summarizes a settled checkout.
type Receipt struct {
	Lines        []ReceiptLine
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
	Balance      decimal.Decimal // customer balance after settlement
}
