package request

import "testing"

func TestVerifyPaymentRequest_Complete(t *testing.T) {
	full := VerifyPaymentRequest{
		RazorpayOrderID:   "order_1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
		ReminderID:        "rem-1",
	}
	if !full.Complete() {
		t.Fatalf("expected complete request")
	}

	cases := []VerifyPaymentRequest{
		{},
		{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", RazorpaySignature: "sig"},
		{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1", ReminderID: "rem-1"},
		{RazorpayOrderID: "order_1", RazorpaySignature: "sig", ReminderID: "rem-1"},
		{RazorpayPaymentID: "pay_1", RazorpaySignature: "sig", ReminderID: "rem-1"},
		{RazorpayOrderID: "  ", RazorpayPaymentID: "pay_1", RazorpaySignature: "sig", ReminderID: "rem-1"},
	}
	for i, c := range cases {
		if c.Complete() {
			t.Fatalf("case %d: expected incomplete request", i)
		}
	}
}
