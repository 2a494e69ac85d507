package interfaces

import (
	"context"
	"time"

	"remindpay/internal/domain/entities"
)

// IReminderRepository abstracts DynamoDB persistence for Reminder payment
// fields.
//
// Contract:
//   - a missing reminder id yields a zero-value Reminder and a nil error;
//     callers detect absence via ID == "".
//   - MarkPaid is atomic per record, monotonic on is_paid, and keeps the
//     first paid_at value on repeated calls.

type IReminderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Reminder, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Reminder, error)
}
