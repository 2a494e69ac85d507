package interfaces

import (
	"context"
	"errors"

	"remindpay/internal/domain/entities"
)

// ErrDuplicatePaymentEvent signals that a payment id was already recorded.
// Callers treat it as "already applied", not as a failure.
var ErrDuplicatePaymentEvent = errors.New("payment event already recorded")

// IPaymentEventRepository abstracts the processed-payments dedupe ledger.

type IPaymentEventRepository interface {
	Record(ctx context.Context, e entities.PaymentEvent) error
	GetByPaymentID(ctx context.Context, paymentID string) (entities.PaymentEvent, error)
}
