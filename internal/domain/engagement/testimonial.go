package engagement

// Testimonial is a reader quote shown on the storefront. Testimonials
// are created at seed time only.
type Testimonial struct {
	ID      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"type:text;not null" json:"name"`
	Role    string  `gorm:"type:text;not null" json:"role"`
	Image   *string `gorm:"type:text" json:"image"`
	Content string  `gorm:"type:text;not null" json:"content"`
}

// TableName returns the table name for GORM
func (Testimonial) TableName() string {
	return "testimonials"
}
