package response

import (
	"testing"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:              "pay-1",
		SessionID:       "sess_123",
		OrderID:         42,
		Amount:          decimal.RequireFromString("19.99"),
		Currency:        "USD",
		Status:          entities.PaymentStatusCompleted,
		PaymentIntentID: "pi_1",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	got := FromPayment(p)
	if got.ID != "pay-1" || got.SessionID != "sess_123" || got.OrderID != 42 {
		t.Fatalf("unexpected identifiers: %+v", got)
	}
	if !got.Amount.Equal(p.Amount) || got.Currency != "USD" {
		t.Fatalf("unexpected amount/currency: %+v", got)
	}
	if got.Status != "COMPLETED" || got.PaymentIntentID != "pi_1" {
		t.Fatalf("unexpected status fields: %+v", got)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", got)
	}
}

func TestFromCheckoutSession(t *testing.T) {
	got := FromCheckoutSession(interfaces.CheckoutSession{ID: "sess_123", URL: "https://pay.example/sess_123"})
	if got.SessionID != "sess_123" || got.SessionURL != "https://pay.example/sess_123" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}
