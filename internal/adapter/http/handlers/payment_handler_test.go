package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment_service/internal/adapter/http/handlers/mocks"
	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase"
	"payment_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func completedPayment() entities.Payment {
	now := time.Now().UTC()
	return entities.Payment{
		ID:              "pay-1",
		SessionID:       "sess_123",
		OrderID:         42,
		Amount:          decimal.RequireFromString("19.99"),
		Currency:        "USD",
		Status:          entities.PaymentStatusCompleted,
		PaymentIntentID: "pi_777",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestPaymentHandler_CreateCheckoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/checkout-session", h.CreateCheckoutSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout-session", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/checkout-session", h.CreateCheckoutSession)

		uc.EXPECT().CreateCheckoutSession(gomock.Any(), int64(42), gomock.Any(), "USD").Return(interfaces.CheckoutSession{}, usecase.ErrCheckoutGatewayFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout-session", bytes.NewBufferString(`{"order_id":42,"amount":19.99,"currency":"USD"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PAYMENT_PROVIDER_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/checkout-session", h.CreateCheckoutSession)

		uc.EXPECT().CreateCheckoutSession(gomock.Any(), int64(42), gomock.Any(), "USD").Return(interfaces.CheckoutSession{ID: "sess_123", URL: "https://pay.example/sess_123"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/checkout-session", bytes.NewBufferString(`{"order_id":42,"amount":19.99,"currency":"USD"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "sess_123" || body["session_url"] != "https://pay.example/sess_123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_HandleSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing session_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/success", h.HandleSuccess)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/success", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/success", h.HandleSuccess)

		uc.EXPECT().ConfirmSuccess(gomock.Any(), "sess_404").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/success?session_id=sess_404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/success", h.HandleSuccess)

		uc.EXPECT().ConfirmSuccess(gomock.Any(), "sess_123").Return(completedPayment(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/success?session_id=sess_123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "COMPLETED" || body["payment_intent_id"] != "pi_777" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_HandleCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/cancel", h.HandleCancel)

		cancelled := completedPayment()
		cancelled.Status = entities.PaymentStatusCancelled
		cancelled.PaymentIntentID = ""
		uc.EXPECT().ConfirmCancel(gomock.Any(), "sess_123").Return(cancelled, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cancel?session_id=sess_123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "CANCELLED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["payment_intent_id"]; ok {
			t.Fatalf("payment_intent_id must be omitted when empty: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_VerifySession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/verify-session", h.VerifySession)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-session", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/verify-session", h.VerifySession)

		uc.EXPECT().ConfirmSuccess(gomock.Any(), "sess_123").Return(completedPayment(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-session", bytes.NewBufferString(`{"sessionId":"sess_123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPaymentByOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/order/:order_id", h.GetPaymentByOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/order/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/order/:order_id", h.GetPaymentByOrder)

		uc.EXPECT().GetByOrderID(gomock.Any(), int64(7)).Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/order/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/order/:order_id", h.GetPaymentByOrder)

		uc.EXPECT().GetByOrderID(gomock.Any(), int64(42)).Return(completedPayment(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/order/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_id"] != float64(42) || body["session_id"] != "sess_123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
