package engagement

import (
	"strings"

	"github.com/bookhub/backend/internal/domain/shared"
)

// MinMessageLength is the minimum length of a contact message body
const MinMessageLength = 10

// ContactMessage is a submission from the storefront contact form.
// Messages are append-only; they are never updated or deleted.
type ContactMessage struct {
	shared.BaseEntity
	Name    string `gorm:"type:text;not null" json:"name"`
	Email   string `gorm:"type:text;not null" json:"email"`
	Subject string `gorm:"type:text;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
}

// TableName returns the table name for GORM
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// NewContactMessage builds a contact message from form input
func NewContactMessage(name, email, subject, message string) (*ContactMessage, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION", "Name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("VALIDATION", "Email is required")
	}
	if strings.TrimSpace(subject) == "" {
		return nil, shared.NewDomainError("VALIDATION", "Subject is required")
	}
	if len(strings.TrimSpace(message)) < MinMessageLength {
		return nil, shared.NewDomainError("VALIDATION", "Message must be at least 10 characters")
	}
	return &ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}, nil
}
