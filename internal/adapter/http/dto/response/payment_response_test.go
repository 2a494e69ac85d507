package response

import (
	"testing"
	"time"

	"remindpay/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	o := entities.Order{ID: "order_1", Amount: 50000, Currency: "INR", Receipt: "receipt_rem-1", Status: "created"}

	res := FromOrder(o, "rzp_test_key")
	if !res.Success {
		t.Fatalf("expected success")
	}
	if res.Order.ID != "order_1" || res.Order.Amount != 50000 {
		t.Fatalf("unexpected order: %+v", res.Order)
	}
	if res.Key != "rzp_test_key" {
		t.Fatalf("unexpected key: %s", res.Key)
	}
}

func TestFromReminder(t *testing.T) {
	now := time.Now().UTC()
	r := entities.Reminder{ID: "rem-1", IsPaid: true, PaidAt: &now}

	res := FromReminder(r)
	if !res.Success || !res.Validated {
		t.Fatalf("unexpected flags: %+v", res)
	}
	if res.Updated.ID != "rem-1" || !res.Updated.IsPaid {
		t.Fatalf("unexpected reminder: %+v", res.Updated)
	}
	if res.Updated.PaidAt == nil || !res.Updated.PaidAt.Equal(now) {
		t.Fatalf("unexpected paid_at: %v", res.Updated.PaidAt)
	}
}
