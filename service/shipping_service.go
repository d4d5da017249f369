package service

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/fjod/go_checkout/domain"
)

// shippingRate is the cost per gram (0.03 per 100g).
var shippingRate = decimal.NewFromFloat(0.0003)

// ShippingService prices shipments by total weight. An optional fixed cost
// fully replaces the weight formula while set, for flat-rate promotions or
// deterministic tests.
type ShippingService struct {
	fixedCost *decimal.Decimal
	logger    zerolog.Logger
}

func NewShippingService(logger zerolog.Logger) *ShippingService {
	return &ShippingService{logger: logger}
}

// SetFixedCost replaces the weight formula with a flat cost until cleared.
func (s *ShippingService) SetFixedCost(cost decimal.Decimal) {
	s.fixedCost = &cost
}

// ClearFixedCost restores the weight-based formula.
func (s *ShippingService) ClearFixedCost() {
	s.fixedCost = nil
}

// Ship prices the given lines and returns the shipment notice for them.
// An empty shipment costs nothing and produces no notice.
func (s *ShippingService) Ship(lines []domain.ShippingLine) (decimal.Decimal, *domain.ShipmentNotice) {
	if len(lines) == 0 {
		return decimal.Zero, nil
	}

	var totalWeight float64
	for _, l := range lines {
		totalWeight += l.WeightGrams
	}

	var cost decimal.Decimal
	if s.fixedCost != nil {
		cost = *s.fixedCost
	} else {
		cost = decimal.NewFromFloat(totalWeight).Mul(shippingRate).Ceil()
	}

	s.logger.Debug().
		Float64("total_weight_grams", totalWeight).
		Str("cost", cost.String()).
		Bool("fixed_cost", s.fixedCost != nil).
		Msg("shipment priced")

	notice := &domain.ShipmentNotice{
		Lines:            append([]domain.ShippingLine(nil), lines...),
		TotalWeightGrams: totalWeight,
	}
	return cost, notice
}
