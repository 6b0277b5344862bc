package engagement

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookhub/backend/internal/domain/engagement"
)

// TestimonialService exposes read operations over reader testimonials
type TestimonialService struct {
	testimonials engagement.TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(testimonials engagement.TestimonialRepository) *TestimonialService {
	return &TestimonialService{testimonials: testimonials}
}

// ListTestimonials returns all testimonials
func (s *TestimonialService) ListTestimonials(ctx context.Context) ([]engagement.Testimonial, error) {
	return s.testimonials.FindAll(ctx)
}

// ContactService stores contact form submissions
type ContactService struct {
	messages engagement.ContactMessageRepository
	logger   *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(messages engagement.ContactMessageRepository, logger *zap.Logger) *ContactService {
	return &ContactService{messages: messages, logger: logger}
}

// SubmitContact validates and stores a contact form submission,
// returning the stored message.
func (s *ContactService) SubmitContact(ctx context.Context, req ContactRequest) (*engagement.ContactMessage, error) {
	msg, err := engagement.NewContactMessage(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.messages.Save(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info("Contact message stored",
		zap.Int64("message_id", msg.ID),
		zap.String("subject", msg.Subject))

	return msg, nil
}

// SubscriptionService stores newsletter signups
type SubscriptionService struct {
	subscriptions engagement.SubscriptionRepository
	logger        *zap.Logger
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(subscriptions engagement.SubscriptionRepository, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions, logger: logger}
}

// Subscribe validates and stores a newsletter signup, returning the
// stored subscription. A duplicate email surfaces as
// shared.ErrAlreadyExists from the repository.
func (s *SubscriptionService) Subscribe(ctx context.Context, req SubscribeRequest) (*engagement.Subscription, error) {
	sub, err := engagement.NewSubscription(req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.subscriptions.Save(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("Newsletter subscription stored", zap.Int64("subscription_id", sub.ID))

	return sub, nil
}
