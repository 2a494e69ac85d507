package entities

import (
	"encoding/json"
	"time"
)

// PaymentEventSource identifies which trust path observed a payment.

type PaymentEventSource string

const (
	PaymentEventSourceVerify  PaymentEventSource = "verify"
	PaymentEventSourceWebhook PaymentEventSource = "webhook"
)

// PaymentEvent is one processed-payment ledger row.
//
// Storage model (DynamoDB):
//   - PK: payment_id
//
// The ledger exists to dedupe double application: the client verify call and
// the gateway webhook can both fire for the same payment, and only the first
// recorded observation applies side effects. PayloadRaw keeps the original
// bytes (webhook body or verify claim) for audit.
type PaymentEvent struct {
	PaymentID  string             `json:"payment_id"`
	OrderID    string             `json:"order_id"`
	ReminderID string             `json:"reminder_id,omitempty"`
	Source     PaymentEventSource `json:"source"`
	ReceivedAt time.Time          `json:"received_at"`

	PayloadRaw json.RawMessage `json:"payload_raw,omitempty"`
}
