package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a checkout payment.
//
// Transitions are one-directional: a payment is created PENDING and moves to
// COMPLETED or CANCELLED exactly once. Both are terminal.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// IsTerminal reports whether no further status transition is valid.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusCancelled
}

// Payment is the payment record persisted by the payment-service, one per
// hosted checkout session created with the processor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//   - GSI2 (order_id-index): order_id
//
// Monetary representation:
//   - Amount is in major currency units; the processor receives minor units
//     (amount * 100, truncated).
//
// PaymentIntentID is the processor's record of the collected charge and is
// populated only when Status is COMPLETED.

type Payment struct {
	ID              string          `json:"id"`
	SessionID       string          `json:"session_id"`
	OrderID         int64           `json:"order_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          PaymentStatus   `json:"status"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
