package engagement

import (
	"strings"

	"github.com/bookhub/backend/internal/domain/shared"
)

// Subscription is a newsletter signup. The email is unique store-wide;
// uniqueness is enforced by the database constraint, not a read-first
// check, so concurrent duplicate submissions cannot both succeed.
type Subscription struct {
	shared.BaseEntity
	Email string `gorm:"type:text;not null;uniqueIndex" json:"email"`
}

// TableName returns the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}

// NewSubscription builds a subscription from a submitted email
func NewSubscription(email string) (*Subscription, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, shared.NewDomainError("VALIDATION", "Email is required")
	}
	return &Subscription{Email: email}, nil
}
