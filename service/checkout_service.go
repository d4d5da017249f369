package service

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fjod/go_checkout/domain"
)

// Shipper prices a shipment. *ShippingService is the canonical implementation.
type Shipper interface {
	Ship(lines []domain.ShippingLine) (decimal.Decimal, *domain.ShipmentNotice)
}

// CheckoutService validates a cart against product state, prices shipping,
// settles payment and stock, and emits the receipt. Validation fully
// precedes settlement: a failed checkout leaves the customer and every
// product untouched.
type CheckoutService struct {
	shipping Shipper
	clock    domain.Clock
	sink     Sink
	logger   zerolog.Logger
}

// NewCheckoutService wires the orchestrator. clock may be nil to use the
// system clock; sink may be nil when the caller only wants the returned
// receipt.
func NewCheckoutService(shipping Shipper, clock domain.Clock, sink Sink, logger zerolog.Logger) *CheckoutService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &CheckoutService{
		shipping: shipping,
		clock:    clock,
		sink:     sink,
		logger:   logger,
	}
}

// Checkout runs the full sequence: validate lines in cart order (fail-fast),
// compute the subtotal, price shipping for the shippable lines, check the
// balance, then deduct the total and decrease stock, returning the receipt.
func (s *CheckoutService) Checkout(customer *domain.Customer, cart *domain.Cart) (*domain.Receipt, error) {
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	lines := cart.Lines()
	if err := s.validateLines(lines); err != nil {
		s.logger.Info().Err(err).Str("customer", customer.Name).Msg("checkout rejected")
		return nil, err
	}

	subtotal := cart.Subtotal()

	shippable, err := shippableLines(lines)
	if err != nil {
		return nil, err
	}
	shippingCost, notice := s.shipping.Ship(shippable)

	total := subtotal.Add(shippingCost)
	if !customer.HasSufficientBalance(total) {
		insufficientErr := &domain.InsufficientBalanceError{Required: total, Available: customer.Balance()}
		s.logger.Info().Err(insufficientErr).Str("customer", customer.Name).Msg("checkout rejected")
		return nil, insufficientErr
	}

	receipt, err := s.settle(customer, lines, subtotal, shippingCost, total)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("customer", customer.Name).
		Str("total", total.String()).
		Int("lines", len(lines)).
		Msg("checkout settled")

	if s.sink != nil {
		if notice != nil {
			s.sink.ShipmentPrepared(notice)
		}
		s.sink.ReceiptIssued(receipt)
	}
	return receipt, nil
}

// validateLines checks every line in cart order and stops at the first
// failure.
func (s *CheckoutService) validateLines(lines []domain.CartLine) error {
	now := s.clock.Now()
	for _, l := range lines {
		if l.Product.IsExpiredAt(now) {
			return &domain.ProductExpiredError{Product: l.Product}
		}
		if !l.Product.IsAvailable(l.Quantity) {
			return &domain.OutOfStockError{
				Product:   l.Product,
				Requested: l.Quantity,
				Available: l.Product.Stock,
			}
		}
	}
	return nil
}

// shippableLines derives the weight-bearing view of the lines whose product
// requires shipping; other lines are skipped entirely.
func shippableLines(lines []domain.CartLine) ([]domain.ShippingLine, error) {
	var out []domain.ShippingLine
	for _, l := range lines {
		if !l.Product.RequiresShipping() {
			continue
		}
		sl, err := domain.NewShippingLine(l.Product, l.Quantity)
		if err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, nil
}

// settle deducts the total and decreases stock in cart order. Both steps
// were validated above and nothing runs in between, so neither can fail on
// its own check.
func (s *CheckoutService) settle(customer *domain.Customer, lines []domain.CartLine, subtotal, shippingCost, total decimal.Decimal) (*domain.Receipt, error) {
	if err := customer.DeductBalance(total); err != nil {
		return nil, err
	}
	for _, l := range lines {
		if err := l.Product.DecreaseStock(l.Quantity); err != nil {
			return nil, err
		}
	}

	receiptLines := make([]domain.ReceiptLine, 0, len(lines))
	for _, l := range lines {
		receiptLines = append(receiptLines, domain.ReceiptLine{
			Quantity: l.Quantity,
			Name:     l.Product.Name,
			Total:    l.LineTotal(),
		})
	}

	return &domain.Receipt{
		Lines:        receiptLines,
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Total:        total,
		Balance:      customer.Balance(),
	}, nil
}
