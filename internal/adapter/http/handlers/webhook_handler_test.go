package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"remindpay/internal/adapter/http/handlers/mocks"
	"remindpay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewWebhookHandler(uc)

	r := gin.New()
	r.POST("/api/payments/webhook", h.HandleWebhook)
	return r, uc
}

func postWebhook(r *gin.Engine, body, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if sig != "" {
		req.Header.Set("x-razorpay-signature", sig)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_HandleWebhook(t *testing.T) {
	body := `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_2","order_id":"order_2"}}}}`

	t.Run("passes raw body and header signature through", func(t *testing.T) {
		r, uc := newWebhookRouter(t)

		uc.EXPECT().ProcessWebhook(gomock.Any(), []byte(body), "sig-header").Return(
			usecase.WebhookOutcome{Event: "payment.captured", PaymentID: "pay_2", OrderID: "order_2"}, nil)

		w := postWebhook(r, body, "sig-header")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "ok" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		r, uc := newWebhookRouter(t)

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			usecase.WebhookOutcome{}, usecase.ErrInvalidSignature)

		w := postWebhook(r, body, "bad-sig")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w.Body.String() != "invalid signature" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("malformed payload behind valid signature", func(t *testing.T) {
		r, uc := newWebhookRouter(t)

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			usecase.WebhookOutcome{}, errors.Join(usecase.ErrMalformedPayload, errors.New("unexpected end of JSON input")))

		w := postWebhook(r, `{"event":`, "sig")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if w.Body.String() != "server error" {
			t.Fatalf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("duplicate event still acknowledged", func(t *testing.T) {
		r, uc := newWebhookRouter(t)

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(
			usecase.WebhookOutcome{Event: "payment.captured", PaymentID: "pay_2", Duplicate: true}, nil)

		w := postWebhook(r, body, "sig")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
