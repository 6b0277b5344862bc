package catalog

import (
	"github.com/bookhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxRating is the upper bound of the book rating scale
const MaxRating = 5.0

// Book represents a title in the store catalog. Books are created by
// seeding and read-only afterwards.
type Book struct {
	shared.BaseEntity
	Title           string           `gorm:"type:text;not null" json:"title"`
	Author          string           `gorm:"type:text;not null" json:"author"`
	Description     string           `gorm:"type:text;not null" json:"description"`
	CoverImage      string           `gorm:"type:text;not null" json:"coverImage"`
	Price           decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice   *decimal.Decimal `gorm:"type:numeric(10,2)" json:"originalPrice"`
	Publisher       string           `gorm:"type:text;not null" json:"publisher"`
	PublicationDate string           `gorm:"type:text;not null" json:"publicationDate"`
	Pages           int              `gorm:"not null" json:"pages"`
	Language        string           `gorm:"type:text;not null" json:"language"`
	Category        string           `gorm:"type:text;not null;index" json:"category"`
	Rating          float64          `gorm:"type:real;not null" json:"rating"`
	ReviewCount     int              `gorm:"not null" json:"reviewCount"`
	IsBestseller    bool             `gorm:"not null;default:false;index" json:"isBestseller"`
	IsNewRelease    bool             `gorm:"not null;default:false;index" json:"isNewRelease"`
	IsFeatured      bool             `gorm:"not null;default:false;index" json:"isFeatured"`
	SampleText      string           `gorm:"type:text;not null" json:"sampleText"`
}

// TableName returns the table name for GORM
func (Book) TableName() string {
	return "books"
}

// Validate checks the catalog invariants on a book record
func (b *Book) Validate() error {
	if b.Title == "" {
		return shared.NewDomainError("VALIDATION", "Book title is required")
	}
	if b.Author == "" {
		return shared.NewDomainError("VALIDATION", "Book author is required")
	}
	if b.Price.IsNegative() {
		return shared.NewDomainError("VALIDATION", "Book price cannot be negative")
	}
	if b.Rating < 0 || b.Rating > MaxRating {
		return shared.NewDomainError("VALIDATION", "Book rating must be between 0 and 5")
	}
	return nil
}
