package dto

import "net/http"

// Error codes shared across the API. Handlers never send a code that
// is not in this list.
const (
	// ErrCodeValidation is used for malformed or invalid input
	ErrCodeValidation = "VALIDATION"
	// ErrCodeNotFound is used when a resource does not exist
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeConflict is used when a write collides with existing state,
	// e.g. subscribing an email that is already subscribed
	ErrCodeConflict = "CONFLICT"
	// ErrCodeInvalidAmount is used when a checkout amount is not positive
	ErrCodeInvalidAmount = "INVALID_AMOUNT"
	// ErrCodeGatewayError is used when the payment processor call fails
	ErrCodeGatewayError = "GATEWAY_ERROR"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
	// ErrCodePayloadTooLarge is used when the request body exceeds the limit
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// CONFLICT maps to 400: the storefront treats a duplicate signup as a
// plain client error, not a 409.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeConflict:        http.StatusBadRequest,
	ErrCodeInvalidAmount:   http.StatusBadRequest,
	ErrCodeGatewayError:    http.StatusInternalServerError,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes fall back to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
