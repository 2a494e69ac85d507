package request

import "strings"

// CreateOrderRequest is the payload for POST /api/payments/create-order.
// Amount is in major currency units; currency and receipt are optional.
type CreateOrderRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Receipt    string  `json:"receipt"`
	ReminderID string  `json:"reminderId"`
}

// VerifyPaymentRequest is the client-submitted payment proof for
// POST /api/payments/verify. The razorpay_* field names match what the
// checkout UI hands back to the frontend.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	ReminderID        string `json:"reminderId"`
}

// Complete reports whether every required field is present.
func (r VerifyPaymentRequest) Complete() bool {
	return strings.TrimSpace(r.RazorpayOrderID) != "" &&
		strings.TrimSpace(r.RazorpayPaymentID) != "" &&
		strings.TrimSpace(r.RazorpaySignature) != "" &&
		strings.TrimSpace(r.ReminderID) != ""
}
