package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fjod/go_checkout/domain"
)

// fixedClock implements domain.Clock for testing
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// recordingSink captures everything emitted by a checkout
type recordingSink struct {
	notices  []*domain.ShipmentNotice
	receipts []*domain.Receipt
}

func (s *recordingSink) ShipmentPrepared(n *domain.ShipmentNotice) {
	s.notices = append(s.notices, n)
}

func (s *recordingSink) ReceiptIssued(r *domain.Receipt) {
	s.receipts = append(s.receipts, r)
}

// stubShipper implements Shipper with a canned answer and captures its input
type stubShipper struct {
	cost   decimal.Decimal
	notice *domain.ShipmentNotice
	got    []domain.ShippingLine
	calls  int
}

func (s *stubShipper) Ship(lines []domain.ShippingLine) (decimal.Decimal, *domain.ShipmentNotice) {
	s.calls++
	s.got = lines
	return s.cost, s.notice
}
