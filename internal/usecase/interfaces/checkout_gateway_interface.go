package interfaces

import "context"

// CreateSessionParams carries everything the processor needs to open a hosted
// checkout session. AmountMinorUnits is the integer minor-unit amount (cents);
// SuccessURL and CancelURL may contain the processor's session-id placeholder,
// substituted at redirect time.
type CreateSessionParams struct {
	OrderID          int64
	AmountMinorUnits int64
	Currency         string
	Title            string
	Description      string
	SuccessURL       string
	CancelURL        string
}

// CheckoutSession is the processor-side view of a session. URL is only set on
// creation; PaymentIntentID is only set on retrieval of a paid session.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentIntentID string
}

// ICheckoutGateway abstracts the external payment processor (e.g. Mercado
// Pago Checkout Pro).
//
// The payment-service uses it to open a hosted checkout session and, after
// the customer returns, to retrieve the session's collected payment.
type ICheckoutGateway interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}
