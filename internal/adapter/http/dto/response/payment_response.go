package response

import (
	"time"

	"remindpay/internal/domain/entities"
)

// OrderResponse mirrors the gateway's order handle plus the public key id the
// client needs to open the checkout UI.
type OrderResponse struct {
	Success bool        `json:"success"`
	Order   OrderDetail `json:"order"`
	Key     string      `json:"key"`
}

type OrderDetail struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func FromOrder(o entities.Order, keyID string) OrderResponse {
	return OrderResponse{
		Success: true,
		Order: OrderDetail{
			ID:       o.ID,
			Amount:   o.Amount,
			Currency: o.Currency,
			Receipt:  o.Receipt,
			Status:   o.Status,
		},
		Key: keyID,
	}
}

// VerifyResponse reports a validated claim and the updated reminder.
type VerifyResponse struct {
	Success   bool           `json:"success"`
	Validated bool           `json:"validated"`
	Updated   ReminderDetail `json:"updated"`
}

type ReminderDetail struct {
	ID     string     `json:"id"`
	IsPaid bool       `json:"is_paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

func FromReminder(r entities.Reminder) VerifyResponse {
	return VerifyResponse{
		Success:   true,
		Validated: true,
		Updated: ReminderDetail{
			ID:     r.ID,
			IsPaid: r.IsPaid,
			PaidAt: r.PaidAt,
		},
	}
}

// VerifyRejection is the body for a verify request that failed validation.
// Validated distinguishes a signature mismatch (false) from a valid claim
// whose target reminder is absent (true).
type VerifyRejection struct {
	Success   bool   `json:"success"`
	Validated bool   `json:"validated"`
	Message   string `json:"message"`
}
