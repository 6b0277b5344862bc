package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/bookhub/backend/internal/application/catalog"
)

// CategoryHandler handles catalog read endpoints for categories
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, categories)
}
