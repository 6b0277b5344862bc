package payment

import (
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v81"
)

// StripeConfig holds configuration for the Stripe integration
type StripeConfig struct {
	// SecretKey is the Stripe secret API key (sk_test_xxx or sk_live_xxx)
	SecretKey string `json:"secret_key" mapstructure:"secret_key"`

	// PublishableKey is the Stripe publishable key handed to the frontend
	PublishableKey string `json:"publishable_key" mapstructure:"publishable_key"`

	// IsTestMode indicates if using Stripe test mode
	IsTestMode bool `json:"is_test_mode" mapstructure:"is_test_mode"`

	// Currency is the ISO currency code charges are created in (e.g. "usd")
	Currency string `json:"currency" mapstructure:"currency"`
}

// DefaultStripeConfig returns a configuration suitable for development
func DefaultStripeConfig() *StripeConfig {
	return &StripeConfig{
		IsTestMode: true,
		Currency:   "usd",
	}
}

// Validate validates the Stripe configuration
func (c *StripeConfig) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("stripe: secret key is required")
	}

	if c.IsTestMode {
		if len(c.SecretKey) > 7 && !strings.HasPrefix(c.SecretKey, "sk_test") {
			return fmt.Errorf("stripe: test mode enabled but secret key is not a test key")
		}
	} else {
		if len(c.SecretKey) > 7 && !strings.HasPrefix(c.SecretKey, "sk_live") {
			return fmt.Errorf("stripe: live mode enabled but secret key is not a live key")
		}
	}

	if c.Currency == "" {
		return fmt.Errorf("stripe: currency is required")
	}

	return nil
}

// InitStripeClient sets the package-level Stripe API key
func (c *StripeConfig) InitStripeClient() {
	stripe.Key = c.SecretKey
}
