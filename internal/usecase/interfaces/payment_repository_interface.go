package interfaces

import (
	"context"

	"payment_service/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Save is insert-or-update: the repository assigns ID and CreatedAt on the
// first save and refreshes UpdatedAt on every save. Lookups return a
// zero-value Payment (ID == "") when no record matches; errors are reserved
// for storage failures.

type IPaymentRepository interface {
	Save(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID int64) (entities.Payment, error)
}
