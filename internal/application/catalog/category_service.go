package catalog

import (
	"context"

	"github.com/bookhub/backend/internal/domain/catalog"
)

// CategoryService exposes read operations over book categories
type CategoryService struct {
	categories catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// ListCategories returns all categories
func (s *CategoryService) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return s.categories.FindAll(ctx)
}
