package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.uber.org/zap"

	"github.com/bookhub/backend/internal/domain/checkout"
)

// StripeGateway implements checkout.PaymentGateway on top of the
// Stripe PaymentIntents API.
type StripeGateway struct {
	config *StripeConfig
	logger *zap.Logger
}

// NewStripeGateway creates a new Stripe gateway
func NewStripeGateway(config *StripeConfig, logger *zap.Logger) (*StripeGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.InitStripeClient()

	return &StripeGateway{
		config: config,
		logger: logger,
	}, nil
}

// CreateIntent creates a payment intent with automatic payment methods enabled
func (g *StripeGateway) CreateIntent(ctx context.Context, p checkout.CreateIntentParams) (*checkout.PaymentIntent, error) {
	currency := p.Currency
	if currency == "" {
		currency = g.config.Currency
	}

	g.logger.Debug("Creating payment intent",
		zap.Int64("amount", p.Amount),
		zap.String("currency", currency))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if len(p.Metadata) > 0 {
		params.Metadata = p.Metadata
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error("Failed to create payment intent",
			zap.Int64("amount", p.Amount),
			zap.Error(err))
		return nil, translateStripeError(err)
	}

	g.logger.Info("Created payment intent",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount", intent.Amount))

	return toDomainIntent(intent), nil
}

// GetIntent retrieves a payment intent by ID
func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*checkout.PaymentIntent, error) {
	g.logger.Debug("Getting payment intent", zap.String("intent_id", id))

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(id, params)
	if err != nil {
		g.logger.Error("Failed to get payment intent",
			zap.String("intent_id", id),
			zap.Error(err))
		return nil, translateStripeError(err)
	}

	return toDomainIntent(intent), nil
}

func toDomainIntent(intent *stripe.PaymentIntent) *checkout.PaymentIntent {
	return &checkout.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Metadata:     intent.Metadata,
	}
}

// translateStripeError converts a Stripe client error into a typed
// GatewayError so callers never inspect message strings.
func translateStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		code := string(stripeErr.Code)
		if code == "" {
			code = string(stripeErr.Type)
		}
		return checkout.NewGatewayError(code, stripeErr.Msg)
	}
	return checkout.NewGatewayError("unreachable", err.Error())
}
