package entities

// OrderRequest is the normalized order-creation request sent to the gateway.
//
// Amount is in minor currency units (paise for INR); Notes is echoed back by
// Razorpay inside payment entities, which is how webhook events are
// reconciled to a reminder.
type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order is the gateway's order handle as returned from order creation.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
