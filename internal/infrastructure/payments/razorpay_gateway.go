package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"remindpay/internal/domain/entities"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

// RazorpayGateway creates orders through the Razorpay orders API.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / RAZORPAY_MOCK) fabricates a created
// order locally so the rest of the flow can be exercised without gateway
// credentials.
type RazorpayGateway struct {
	client   *razorpay.Client
	mockMode bool
}

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[payment][gateway] razorpay client initialized key_id=%s", keyID)
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error) {
	if g != nil && g.mockMode {
		order := entities.Order{
			ID:       "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10),
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		}
		log.Printf("[payment][gateway] mock create success order_id=%s amount=%d", order.ID, order.Amount)
		return order, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Order{}, ErrRazorpayGatewayNotConfigured
	}

	data := map[string]interface{}{
		"amount":          req.Amount,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
	}
	if len(req.Notes) > 0 {
		notes := make(map[string]interface{}, len(req.Notes))
		for k, v := range req.Notes {
			notes[k] = v
		}
		data["notes"] = notes
	}

	log.Printf("[payment][gateway] create start receipt=%s amount=%d currency=%s", req.Receipt, req.Amount, req.Currency)

	// The razorpay-go client does not thread context through its calls; the
	// surrounding deadline is enforced by the caller.
	_ = ctx
	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed receipt=%s err=%v", req.Receipt, err)
		return entities.Order{}, err
	}

	order := orderFromResponse(resp)
	if order.ID == "" {
		b, _ := json.Marshal(resp)
		log.Printf("[payment][gateway] sdk create returned no order id resp=%s", string(b))
		return entities.Order{}, errors.New("razorpay order response missing id")
	}
	log.Printf("[payment][gateway] create success order_id=%s status=%s", order.ID, order.Status)

	return order, nil
}

func orderFromResponse(resp map[string]interface{}) entities.Order {
	return entities.Order{
		ID:       stringField(resp, "id"),
		Amount:   intField(resp, "amount"),
		Currency: stringField(resp, "currency"),
		Receipt:  stringField(resp, "receipt"),
		Status:   stringField(resp, "status"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	return s
}

func intField(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
