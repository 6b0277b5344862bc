package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	checkoutapp "github.com/bookhub/backend/internal/application/checkout"
	"github.com/bookhub/backend/internal/domain/checkout"
	"github.com/bookhub/backend/internal/interfaces/http/dto"
)

// stubGateway returns canned intents and records the last params
type stubGateway struct {
	lastParams checkout.CreateIntentParams
	intent     *checkout.PaymentIntent
	err        error
}

func (s *stubGateway) CreateIntent(ctx context.Context, params checkout.CreateIntentParams) (*checkout.PaymentIntent, error) {
	s.lastParams = params
	return s.intent, s.err
}

func (s *stubGateway) GetIntent(ctx context.Context, id string) (*checkout.PaymentIntent, error) {
	return s.intent, s.err
}

func newCheckoutTestRouter(gateway *stubGateway, books *stubBookRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := checkoutapp.NewCheckoutService(gateway, books, "usd", zap.NewNop())
	h := NewCheckoutHandler(svc)

	r := gin.New()
	r.POST("/api/create-payment-intent", h.CreatePaymentIntent)
	r.GET("/api/payment-status/:paymentIntentId", h.GetPaymentStatus)
	return r
}

func TestCheckoutHandler_CreatePaymentIntent(t *testing.T) {
	t.Run("returns client secret", func(t *testing.T) {
		gateway := &stubGateway{intent: &checkout.PaymentIntent{
			ID:           "pi_1",
			ClientSecret: "pi_1_secret",
			Amount:       1299,
		}}
		r := newCheckoutTestRouter(gateway, &stubBookRepository{})

		w := postJSON(r, "/api/create-payment-intent", map[string]any{"amount": 12.99})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "pi_1_secret", resp["clientSecret"])
		assert.Equal(t, "12.99", resp["amount"])
		assert.Equal(t, int64(1299), gateway.lastParams.Amount)
	})

	t.Run("zero amount returns INVALID_AMOUNT", func(t *testing.T) {
		gateway := &stubGateway{}
		r := newCheckoutTestRouter(gateway, &stubBookRepository{})

		w := postJSON(r, "/api/create-payment-intent", map[string]any{"amount": 0})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeInvalidAmount, resp.Code)
	})

	t.Run("gateway failure returns 500 GATEWAY_ERROR", func(t *testing.T) {
		gateway := &stubGateway{err: checkout.NewGatewayError("api_error", "Stripe is down")}
		r := newCheckoutTestRouter(gateway, &stubBookRepository{})

		w := postJSON(r, "/api/create-payment-intent", map[string]any{"amount": 12.99})

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeGatewayError, resp.Code)
		assert.Equal(t, "Stripe is down", resp.Message)
	})
}

func TestCheckoutHandler_GetPaymentStatus(t *testing.T) {
	gateway := &stubGateway{intent: &checkout.PaymentIntent{
		ID:     "pi_1",
		Status: "succeeded",
		Amount: 1299,
		Metadata: map[string]string{
			"bookId": "1",
		},
	}}
	r := newCheckoutTestRouter(gateway, &stubBookRepository{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/payment-status/pi_1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "succeeded", resp["status"])
	assert.Equal(t, "12.99", resp["amount"])
	metadata := resp["metadata"].(map[string]any)
	assert.Equal(t, "1", metadata["bookId"])
}
