package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	engagementapp "github.com/bookhub/backend/internal/application/engagement"
	"github.com/bookhub/backend/internal/domain/engagement"
	"github.com/bookhub/backend/internal/domain/shared"
	"github.com/bookhub/backend/internal/interfaces/http/dto"
)

type stubContactRepository struct {
	saved *engagement.ContactMessage
}

func (s *stubContactRepository) Save(ctx context.Context, msg *engagement.ContactMessage) error {
	msg.ID = 1
	s.saved = msg
	return nil
}

type stubSubscriptionRepository struct {
	existing map[string]bool
}

func (s *stubSubscriptionRepository) Save(ctx context.Context, sub *engagement.Subscription) error {
	if s.existing[sub.Email] {
		return shared.ErrAlreadyExists
	}
	s.existing[sub.Email] = true
	sub.ID = 1
	return nil
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestContactHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubContactRepository{}
	h := NewContactHandler(engagementapp.NewContactService(repo, zap.NewNop()))

	r := gin.New()
	r.POST("/api/contact", h.Submit)

	t.Run("stores valid submission", func(t *testing.T) {
		w := postJSON(r, "/api/contact", map[string]string{
			"name":    "Jane",
			"email":   "jane@example.com",
			"subject": "Shipping",
			"message": "Do you ship internationally?",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var msg map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
		assert.Equal(t, float64(1), msg["id"])
		assert.Equal(t, "Shipping", msg["subject"])
		require.NotNil(t, repo.saved)
	})

	t.Run("short message returns field-specific error", func(t *testing.T) {
		w := postJSON(r, "/api/contact", map[string]string{
			"name":    "Jane",
			"email":   "jane@example.com",
			"subject": "Hi",
			"message": "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeValidation, resp.Code)
		assert.Contains(t, resp.Message, "Message")
	})

	t.Run("invalid email rejected by binding", func(t *testing.T) {
		w := postJSON(r, "/api/contact", map[string]string{
			"name":    "Jane",
			"email":   "not-an-email",
			"subject": "Hi there",
			"message": "A long enough message body",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Message, "Email")
	})
}

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubSubscriptionRepository{existing: map[string]bool{}}
	h := NewSubscriptionHandler(engagementapp.NewSubscriptionService(repo, zap.NewNop()))

	r := gin.New()
	r.POST("/api/subscriptions", h.Subscribe)

	t.Run("stores new subscription", func(t *testing.T) {
		w := postJSON(r, "/api/subscriptions", map[string]string{"email": "Reader@Example.com"})

		assert.Equal(t, http.StatusCreated, w.Code)

		var sub map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
		assert.Equal(t, "reader@example.com", sub["email"])
	})

	t.Run("duplicate email returns 400 CONFLICT", func(t *testing.T) {
		w := postJSON(r, "/api/subscriptions", map[string]string{"email": "reader@example.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeConflict, resp.Code)
	})

	t.Run("missing email returns 400", func(t *testing.T) {
		w := postJSON(r, "/api/subscriptions", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
