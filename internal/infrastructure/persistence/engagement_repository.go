package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookhub/backend/internal/domain/engagement"
	"github.com/bookhub/backend/internal/domain/shared"
)

// GormTestimonialRepository implements engagement.TestimonialRepository using GORM
type GormTestimonialRepository struct {
	db *gorm.DB
}

// NewGormTestimonialRepository creates a new GormTestimonialRepository
func NewGormTestimonialRepository(db *gorm.DB) *GormTestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

// FindAll returns all testimonials
func (r *GormTestimonialRepository) FindAll(ctx context.Context) ([]engagement.Testimonial, error) {
	var testimonials []engagement.Testimonial
	if err := r.db.WithContext(ctx).Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Count returns the number of testimonials
func (r *GormTestimonialRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&engagement.Testimonial{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveAll inserts a batch of testimonials (used by seeding)
func (r *GormTestimonialRepository) SaveAll(ctx context.Context, testimonials []engagement.Testimonial) error {
	if len(testimonials) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&testimonials).Error
}

// GormContactMessageRepository implements engagement.ContactMessageRepository using GORM
type GormContactMessageRepository struct {
	db *gorm.DB
}

// NewGormContactMessageRepository creates a new GormContactMessageRepository
func NewGormContactMessageRepository(db *gorm.DB) *GormContactMessageRepository {
	return &GormContactMessageRepository{db: db}
}

// Save inserts a contact message
func (r *GormContactMessageRepository) Save(ctx context.Context, message *engagement.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// GormSubscriptionRepository implements engagement.SubscriptionRepository using GORM
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormSubscriptionRepository creates a new GormSubscriptionRepository
func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// Save inserts a subscription. Duplicate emails surface as
// shared.ErrAlreadyExists via the unique constraint on the email
// column; there is no read-before-write check.
func (r *GormSubscriptionRepository) Save(ctx context.Context, subscription *engagement.Subscription) error {
	if err := r.db.WithContext(ctx).Create(subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}
