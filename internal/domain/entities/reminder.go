package entities

import "time"

// Reminder is the payment-relevant view of a reminder record.
//
// The reminder lifecycle (creation, editing, deletion) is owned by the
// reminder-management service; this backend only flips the payment fields.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Payment invariants:
//   - IsPaid is monotonic: once true it never goes back to false here.
//   - PaidAt is set exactly once, when IsPaid transitions to true, so
//     PaidAt != nil iff IsPaid.
type Reminder struct {
	ID     string     `json:"id"`
	Title  string     `json:"title,omitempty"`
	IsPaid bool       `json:"is_paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}
