package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	engagementapp "github.com/bookhub/backend/internal/application/engagement"
)

// TestimonialHandler handles GET /api/testimonials
type TestimonialHandler struct {
	BaseHandler
	testimonialService *engagementapp.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(testimonialService *engagementapp.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// List handles GET /api/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.testimonialService.ListTestimonials(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.OK(c, testimonials)
}

// ContactHandler handles contact form submissions
type ContactHandler struct {
	BaseHandler
	contactService *engagementapp.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *engagementapp.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req engagementapp.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	msg, err := h.contactService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// SubscriptionHandler handles newsletter signups
type SubscriptionHandler struct {
	BaseHandler
	subscriptionService *engagementapp.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subscriptionService *engagementapp.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Subscribe handles POST /api/subscriptions
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req engagementapp.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	sub, err := h.subscriptionService.Subscribe(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}
