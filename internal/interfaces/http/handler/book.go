package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/bookhub/backend/internal/application/catalog"
)

// BookHandler handles catalog read endpoints for books
type BookHandler struct {
	BaseHandler
	bookService *catalogapp.BookService
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(bookService *catalogapp.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// GetFeatured handles GET /api/books/featured
func (h *BookHandler) GetFeatured(c *gin.Context) {
	books, err := h.bookService.GetFeaturedBooks(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, books)
}

// GetNewReleases handles GET /api/books/new-releases?category=
func (h *BookHandler) GetNewReleases(c *gin.Context) {
	books, err := h.bookService.GetNewReleases(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, books)
}

// GetBestsellers handles GET /api/books/bestsellers
func (h *BookHandler) GetBestsellers(c *gin.Context) {
	books, err := h.bookService.GetBestsellers(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, books)
}

// Search handles GET /api/books/search?q=
func (h *BookHandler) Search(c *gin.Context) {
	books, err := h.bookService.SearchBooks(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, books)
}

// GetByID handles GET /api/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.BadRequest(c, "Invalid book ID")
		return
	}

	book, err := h.bookService.GetBook(c.Request.Context(), id)
	if err != nil {
		h.NotFoundOrError(c, err, "Book not found")
		return
	}
	h.OK(c, book)
}
