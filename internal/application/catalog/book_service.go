package catalog

import (
	"context"
	"strings"

	"github.com/bookhub/backend/internal/domain/catalog"
)

// BookService exposes read operations over the book catalog
type BookService struct {
	books catalog.BookRepository
}

// NewBookService creates a new BookService
func NewBookService(books catalog.BookRepository) *BookService {
	return &BookService{books: books}
}

// GetBook returns a single book by ID
func (s *BookService) GetBook(ctx context.Context, id int64) (*catalog.Book, error) {
	return s.books.FindByID(ctx, id)
}

// GetFeaturedBooks returns the books flagged for the storefront hero section
func (s *BookService) GetFeaturedBooks(ctx context.Context) ([]catalog.Book, error) {
	return s.books.FindFeatured(ctx)
}

// GetNewReleases returns new releases, optionally narrowed to one category.
// An empty category or the "All Categories" pseudo-category returns everything.
func (s *BookService) GetNewReleases(ctx context.Context, category string) ([]catalog.Book, error) {
	return s.books.FindNewReleases(ctx, strings.TrimSpace(category))
}

// GetBestsellers returns the books flagged as bestsellers
func (s *BookService) GetBestsellers(ctx context.Context) ([]catalog.Book, error) {
	return s.books.FindBestsellers(ctx)
}

// SearchBooks returns books whose title, author or description matches
// the query. A blank query returns an empty result rather than the
// whole catalog.
func (s *BookService) SearchBooks(ctx context.Context, query string) ([]catalog.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []catalog.Book{}, nil
	}
	return s.books.Search(ctx, query)
}
