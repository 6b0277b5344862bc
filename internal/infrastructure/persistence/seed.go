package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bookhub/backend/internal/domain/catalog"
	"github.com/bookhub/backend/internal/domain/engagement"
)

// Seeder populates the store with initial catalog and engagement data.
// Each table is only seeded when it is empty, so repeated boots are safe.
type Seeder struct {
	books        catalog.BookRepository
	categories   catalog.CategoryRepository
	testimonials engagement.TestimonialRepository
	logger       *zap.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(
	books catalog.BookRepository,
	categories catalog.CategoryRepository,
	testimonials engagement.TestimonialRepository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		books:        books,
		categories:   categories,
		testimonials: testimonials,
		logger:       logger,
	}
}

// Run seeds all empty tables
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedCategories(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := s.seedTestimonials(ctx); err != nil {
		return fmt.Errorf("seed testimonials: %w", err)
	}
	if err := s.seedBooks(ctx); err != nil {
		return fmt.Errorf("seed books: %w", err)
	}
	s.logger.Info("Database seeded successfully")
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	count, err := s.categories.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []catalog.Category{
		{Name: "Science Fiction", Icon: "rocket", BookCount: 142},
		{Name: "Romance", Icon: "heart", BookCount: 286},
		{Name: "Mystery", Icon: "magnifying-glass", BookCount: 189},
		{Name: "Business", Icon: "briefcase", BookCount: 127},
		{Name: "Self-Help", Icon: "brain", BookCount: 173},
		{Name: "History", Icon: "landmark", BookCount: 98},
	}
	s.logger.Info("Seeding categories", zap.Int("count", len(categories)))
	return s.categories.SaveAll(ctx, categories)
}

func (s *Seeder) seedTestimonials(ctx context.Context) error {
	count, err := s.testimonials.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	testimonials := []engagement.Testimonial{
		{
			Name:    "Jennifer Smith",
			Role:    "Avid Reader",
			Image:   strPtr("https://randomuser.me/api/portraits/women/17.jpg"),
			Content: "I've been using BookHub for the past year and it has completely transformed my reading experience. The recommendations are spot-on and I love the preview feature!",
		},
		{
			Name:    "Michael Johnson",
			Role:    "Book Blogger",
			Image:   strPtr("https://randomuser.me/api/portraits/men/32.jpg"),
			Content: "As someone who reads and reviews books professionally, I can say that BookHub offers one of the best digital reading experiences out there. Their selection is outstanding.",
		},
		{
			Name:    "Sarah Williams",
			Role:    "Entrepreneur",
			Image:   strPtr("https://randomuser.me/api/portraits/women/37.jpg"),
			Content: "The business section on BookHub has been invaluable for my professional growth. I've discovered some amazing titles that have helped me scale my startup.",
		},
	}
	s.logger.Info("Seeding testimonials", zap.Int("count", len(testimonials)))
	return s.testimonials.SaveAll(ctx, testimonials)
}

func (s *Seeder) seedBooks(ctx context.Context) error {
	count, err := s.books.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := []catalog.Book{
		{
			Title:           "The Future Is Now",
			Author:          "Alexandra Chen",
			Description:     "A thought-provoking journey into the near future where technology has transformed every aspect of human life.",
			CoverImage:      "https://images.unsplash.com/photo-1544947950-fa07a98d237f?auto=format&fit=crop&w=800&h=1200",
			Price:           decimal.NewFromFloat(12.99),
			OriginalPrice:   decimalPtr(15.99),
			Publisher:       "Horizon Press",
			PublicationDate: "June 15, 2023",
			Pages:           348,
			Language:        "English",
			Category:        "Science Fiction",
			Rating:          4.5,
			ReviewCount:     128,
			IsBestseller:    true,
			IsFeatured:      true,
			SampleText:      "Chapter 1: The Beginning\n\nThe alarm clock buzzed incessantly, pulling Sarah from a dream she couldn't quite remember.",
		},
		{
			Title:           "Strategic Growth",
			Author:          "Michael J. Roberts",
			Description:     "A comprehensive guide to scaling businesses and achieving sustainable growth in competitive markets.",
			CoverImage:      "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?auto=format&fit=crop&w=800&h=1200",
			Price:           decimal.NewFromFloat(15.99),
			Publisher:       "Business Elite Publishing",
			PublicationDate: "March 22, 2023",
			Pages:           412,
			Language:        "English",
			Category:        "Business",
			Rating:          5.0,
			ReviewCount:     247,
			IsBestseller:    true,
			IsFeatured:      true,
			SampleText:      "Chapter 1: Rethinking Growth\n\nMost businesses fail not because they lack good products or talented people, but because they don't understand what true growth means.",
		},
		{
			Title:           "Mindful Living",
			Author:          "Sarah Johnson",
			Description:     "A practical guide to incorporating mindfulness into everyday activities for reduced stress and enhanced well-being.",
			CoverImage:      "https://images.unsplash.com/photo-1544716278-e513176f20b5?auto=format&fit=crop&w=800&h=1200",
			Price:           decimal.NewFromFloat(10.99),
			OriginalPrice:   decimalPtr(13.99),
			Publisher:       "Serenity Books",
			PublicationDate: "January 5, 2023",
			Pages:           256,
			Language:        "English",
			Category:        "Self-Help",
			Rating:          4.0,
			ReviewCount:     189,
			IsNewRelease:    true,
			IsFeatured:      true,
			SampleText:      "Chapter 1: The Present Moment\n\nTake a deep breath. Feel the air filling your lungs. Notice the sensation as it enters through your nostrils.",
		},
	}

	for i := range books {
		if err := books[i].Validate(); err != nil {
			return fmt.Errorf("seed book %q: %w", books[i].Title, err)
		}
	}

	s.logger.Info("Seeding books", zap.Int("count", len(books)))
	return s.books.SaveAll(ctx, books)
}

func strPtr(s string) *string {
	return &s
}

func decimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}
