package checkout

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentIntent mirrors the gateway's view of a single attempted
// charge. The gateway owns the intent lifecycle; only this snapshot
// crosses the boundary.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64 // minor currency units
	Currency     string
	Metadata     map[string]string
}

// CreateIntentParams are the inputs for creating a payment intent
type CreateIntentParams struct {
	Amount   int64 // minor currency units
	Currency string
	Metadata map[string]string
}

// PaymentGateway is the port to the external payment processor
type PaymentGateway interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

// minorUnitFactor converts between major and minor currency units
var minorUnitFactor = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount (e.g. 12.99) to integer
// minor units (1299), rounding to the nearest cent.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}

// ToMajorUnits converts integer minor units back to a major-unit amount
func ToMajorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(minorUnitFactor)
}
