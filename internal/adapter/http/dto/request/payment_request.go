package request

import "github.com/shopspring/decimal"

// CreateCheckoutSessionRequest is the payload for opening a hosted checkout
// session. Amount is in major currency units; minor-unit conversion happens
// in the use case.

type CreateCheckoutSessionRequest struct {
	OrderID  int64           `json:"order_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required"`
}

// VerifySessionRequest carries the session id posted back by the frontend
// after the processor redirect.

type VerifySessionRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
