package checkout

import (
	"fmt"

	"github.com/bookhub/backend/internal/domain/shared"
)

// ErrInvalidAmount is returned before any gateway call when the
// requested charge is zero or negative.
var ErrInvalidAmount = shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")

// GatewayError carries a classified failure from the payment
// processor. Callers branch on Code, never on message text.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %s: %s", e.Code, e.Message)
}

// NewGatewayError creates a GatewayError
func NewGatewayError(code, message string) *GatewayError {
	return &GatewayError{Code: code, Message: message}
}
