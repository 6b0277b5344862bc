package checkout

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/bookhub/backend/internal/domain/catalog"
	"github.com/bookhub/backend/internal/domain/checkout"
	"github.com/bookhub/backend/internal/domain/shared"
)

// CheckoutService orchestrates payment intent creation for single-book
// purchases. It owns no payment state; the gateway is the source of
// truth for intent status.
type CheckoutService struct {
	gateway  checkout.PaymentGateway
	books    catalog.BookRepository
	currency string
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	gateway checkout.PaymentGateway,
	books catalog.BookRepository,
	currency string,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		gateway:  gateway,
		books:    books,
		currency: currency,
		logger:   logger,
	}
}

// CreateCheckout validates the amount, attaches book metadata when the
// book exists, and creates a payment intent with the gateway.
func (s *CheckoutService) CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*CreateCheckoutResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, checkout.ErrInvalidAmount
	}

	metadata := s.bookMetadata(ctx, req.BookID)

	intent, err := s.gateway.CreateIntent(ctx, checkout.CreateIntentParams{
		Amount:   checkout.ToMinorUnits(req.Amount),
		Currency: s.currency,
		Metadata: metadata,
	})
	if err != nil {
		return nil, s.translateGatewayError(err)
	}

	s.logger.Info("Checkout started",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount_minor", intent.Amount))

	return &CreateCheckoutResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       req.Amount,
	}, nil
}

// GetPaymentStatus returns the gateway's current view of an intent
func (s *CheckoutService) GetPaymentStatus(ctx context.Context, intentID string) (*PaymentStatusResponse, error) {
	intent, err := s.gateway.GetIntent(ctx, intentID)
	if err != nil {
		return nil, s.translateGatewayError(err)
	}

	metadata := intent.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	return &PaymentStatusResponse{
		Status:   intent.Status,
		Amount:   checkout.ToMajorUnits(intent.Amount),
		Metadata: metadata,
	}, nil
}

// bookMetadata looks up the referenced book and flattens it into
// intent metadata. A missing book is not an error; the checkout simply
// proceeds without metadata.
func (s *CheckoutService) bookMetadata(ctx context.Context, bookID *int64) map[string]string {
	if bookID == nil {
		return nil
	}

	book, err := s.books.FindByID(ctx, *bookID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Book lookup failed during checkout",
				zap.Int64("book_id", *bookID),
				zap.Error(err))
		}
		return nil
	}

	return map[string]string{
		"bookId":     strconv.FormatInt(book.ID, 10),
		"bookTitle":  book.Title,
		"bookAuthor": book.Author,
	}
}

// translateGatewayError maps classified gateway failures onto the
// API error taxonomy, keeping the gateway's own message.
func (s *CheckoutService) translateGatewayError(err error) error {
	var ge *checkout.GatewayError
	if errors.As(err, &ge) {
		s.logger.Error("Payment gateway call failed",
			zap.String("gateway_code", ge.Code),
			zap.String("gateway_message", ge.Message))
		return shared.NewDomainError("GATEWAY_ERROR", ge.Message)
	}
	return err
}
