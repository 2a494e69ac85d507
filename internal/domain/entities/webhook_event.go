package entities

// Razorpay webhook payload shapes. Only the fields this backend reads are
// modelled; everything else stays in the raw body.

const WebhookEventPaymentCaptured = "payment.captured"

type WebhookEvent struct {
	Event   string         `json:"event"`
	Payload WebhookPayload `json:"payload"`
}

type WebhookPayload struct {
	Payment WebhookPaymentWrapper `json:"payment"`
}

type WebhookPaymentWrapper struct {
	Entity WebhookPaymentEntity `json:"entity"`
}

// WebhookPaymentEntity is the payment entity inside a payment.* event.
// Notes carries back whatever was attached at order creation, including the
// reminder reference set by the create-order path.
type WebhookPaymentEntity struct {
	ID      string            `json:"id"`
	OrderID string            `json:"order_id"`
	Status  string            `json:"status"`
	Amount  int64             `json:"amount"`
	Notes   map[string]string `json:"notes,omitempty"`
}

// ReminderID returns the reminder reference carried in the payment notes,
// or "" when the order was created without one.
func (e WebhookPaymentEntity) ReminderID() string {
	return e.Notes["reminder_id"]
}
