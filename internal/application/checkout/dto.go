package checkout

import "github.com/shopspring/decimal"

// CreateCheckoutRequest starts a checkout for a single purchase.
// BookID is optional; when present the book's details are attached to
// the payment intent metadata.
type CreateCheckoutRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	BookID *int64          `json:"bookId"`
}

// CreateCheckoutResponse carries what the frontend needs to confirm
// the payment with the gateway's own JS client.
type CreateCheckoutResponse struct {
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
}

// PaymentStatusResponse is the polled state of a payment intent
type PaymentStatusResponse struct {
	Status   string            `json:"status"`
	Amount   decimal.Decimal   `json:"amount"`
	Metadata map[string]string `json:"metadata"`
}
