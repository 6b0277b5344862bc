package catalog

import "context"

// BookRepository defines persistence operations for books
type BookRepository interface {
	FindByID(ctx context.Context, id int64) (*Book, error)
	FindFeatured(ctx context.Context) ([]Book, error)
	FindNewReleases(ctx context.Context, category string) ([]Book, error)
	FindBestsellers(ctx context.Context) ([]Book, error)
	Search(ctx context.Context, query string) ([]Book, error)
	Count(ctx context.Context) (int64, error)
	SaveAll(ctx context.Context, books []Book) error
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Count(ctx context.Context) (int64, error)
	SaveAll(ctx context.Context, categories []Category) error
}
