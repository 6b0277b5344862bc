package handler

import (
	"github.com/gin-gonic/gin"

	checkoutapp "github.com/bookhub/backend/internal/application/checkout"
)

// CheckoutHandler handles payment intent endpoints
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreatePaymentIntent handles POST /api/create-payment-intent
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req checkoutapp.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.checkoutService.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, resp)
}

// GetPaymentStatus handles GET /api/payment-status/:paymentIntentId
func (h *CheckoutHandler) GetPaymentStatus(c *gin.Context) {
	intentID := c.Param("paymentIntentId")
	if intentID == "" {
		h.BadRequest(c, "Payment intent ID is required")
		return
	}

	resp, err := h.checkoutService.GetPaymentStatus(c.Request.Context(), intentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, resp)
}
