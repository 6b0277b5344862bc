package engagement

import "context"

// TestimonialRepository defines persistence operations for testimonials
type TestimonialRepository interface {
	FindAll(ctx context.Context) ([]Testimonial, error)
	Count(ctx context.Context) (int64, error)
	SaveAll(ctx context.Context, testimonials []Testimonial) error
}

// ContactMessageRepository defines persistence operations for contact messages
type ContactMessageRepository interface {
	Save(ctx context.Context, message *ContactMessage) error
}

// SubscriptionRepository defines persistence operations for subscriptions.
// Save returns shared.ErrAlreadyExists when the email is already stored.
type SubscriptionRepository interface {
	Save(ctx context.Context, subscription *Subscription) error
}
