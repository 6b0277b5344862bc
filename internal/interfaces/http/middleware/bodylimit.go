package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhub/backend/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that rejects request bodies over maxBytes
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
				dto.ErrCodePayloadTooLarge,
				"Request body exceeds maximum allowed size",
			))
			return
		}

		// Guard streaming bodies that do not declare a length
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
