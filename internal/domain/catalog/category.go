package catalog

import "github.com/bookhub/backend/internal/domain/shared"

// Category represents a browsable book category. Categories are created
// at seed time; the name is unique across the store.
type Category struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Icon      string `gorm:"type:text;not null" json:"icon"`
	BookCount int    `gorm:"not null;default:0" json:"bookCount"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// Validate checks category invariants
func (c *Category) Validate() error {
	if c.Name == "" {
		return shared.NewDomainError("VALIDATION", "Category name is required")
	}
	return nil
}
