package interfaces

import "context"

// OrderPaymentStatus is the outcome reported to the order-service.

type OrderPaymentStatus string

const (
	OrderPaymentStatusPaid      OrderPaymentStatus = "PAID"
	OrderPaymentStatusCancelled OrderPaymentStatus = "CANCELLED"
)

// IOrderNotifier informs the external order-service of a payment outcome.
//
// The notification is one-way and best-effort: the caller commits the local
// payment state first and must not treat a notification failure as a failure
// of the operation itself.
type IOrderNotifier interface {
	NotifyPaymentStatus(ctx context.Context, orderID int64, status OrderPaymentStatus) error
}
