package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookhub/backend/internal/domain/catalog"
	"github.com/bookhub/backend/internal/domain/shared"
)

// AllCategories is the pseudo-category the storefront sends when no
// category filter is selected.
const AllCategories = "All Categories"

// GormBookRepository implements catalog.BookRepository using GORM
type GormBookRepository struct {
	db *gorm.DB
}

// NewGormBookRepository creates a new GormBookRepository
func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// FindByID finds a book by its ID
func (r *GormBookRepository) FindByID(ctx context.Context, id int64) (*catalog.Book, error) {
	var book catalog.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// FindFeatured returns all books flagged as featured
func (r *GormBookRepository) FindFeatured(ctx context.Context) ([]catalog.Book, error) {
	var books []catalog.Book
	if err := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// FindNewReleases returns books flagged as new releases, optionally
// filtered by category. An empty category or "All Categories" returns
// every new release.
func (r *GormBookRepository) FindNewReleases(ctx context.Context, category string) ([]catalog.Book, error) {
	query := r.db.WithContext(ctx).Where("is_new_release = ?", true)
	if category != "" && category != AllCategories {
		query = query.Where("category = ?", category)
	}

	var books []catalog.Book
	if err := query.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// FindBestsellers returns all books flagged as bestsellers
func (r *GormBookRepository) FindBestsellers(ctx context.Context) ([]catalog.Book, error) {
	var books []catalog.Book
	if err := r.db.WithContext(ctx).
		Where("is_bestseller = ?", true).
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// Search returns books whose title, author, or description matches the query
func (r *GormBookRepository) Search(ctx context.Context, query string) ([]catalog.Book, error) {
	pattern := "%" + query + "%"

	var books []catalog.Book
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR author ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// Count returns the number of books in the catalog
func (r *GormBookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Book{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveAll inserts a batch of books (used by seeding)
func (r *GormBookRepository) SaveAll(ctx context.Context, books []catalog.Book) error {
	if len(books) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&books).Error
}
