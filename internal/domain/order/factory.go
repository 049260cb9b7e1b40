package order

import (
	"creator-sponsorship/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
	Codes CodeGenerator
}

func NewFactory(clock clock.Clock, codes CodeGenerator) *Factory {
	return &Factory{
		Clock: clock,
		Codes: codes,
	}
}

// CreateOrder builds a pending order with a fresh code. Totals are summed from the stamped line prices.
func (f *Factory) CreateOrder(creatorUsername string, items []LineItem, buyer BuyerInfo, message, currency string) (*Order, error) {
	code, err := f.Codes.Generate()
	if err != nil {
		return nil, err
	}
	return newOrder(uuid.New(), code, creatorUsername, items, buyer, message, currency, f.Clock.Now())
}
