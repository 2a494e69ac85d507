package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"remindpay/internal/config"
	"remindpay/internal/domain/entities"
	"remindpay/internal/signature"
	"remindpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentsNotConfigured = errors.New("payment subsystem not configured")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrMissingFields         = errors.New("missing required fields")
	ErrInvalidSignature      = errors.New("invalid signature")
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrGatewayFailure        = errors.New("payment gateway failure")
	ErrMalformedPayload      = errors.New("malformed webhook payload")
)

// CreateOrderInput carries the client's order-creation request. Amount is in
// major currency units; the use case converts to minor units for the gateway.
type CreateOrderInput struct {
	Amount     float64
	Currency   string
	Receipt    string
	ReminderID string
}

// VerificationClaim is the client-submitted payment proof. It is untrusted
// until the signature over "orderId|paymentId" checks out.
type VerificationClaim struct {
	OrderID    string
	PaymentID  string
	Signature  string
	ReminderID string
}

// WebhookOutcome reports what a verified webhook did.
type WebhookOutcome struct {
	Event      string
	PaymentID  string
	OrderID    string
	ReminderID string
	Applied    bool
	Duplicate  bool
}

// IPaymentUseCase is the payment trust boundary: order creation, verification
// of client-submitted payment proofs, and gateway webhook processing.

type IPaymentUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	VerifyPayment(ctx context.Context, claim VerificationClaim) (entities.Reminder, error)
	ProcessWebhook(ctx context.Context, rawBody []byte, sig string) (WebhookOutcome, error)
}

type PaymentUseCase struct {
	reminders interfaces.IReminderRepository
	events    interfaces.IPaymentEventRepository
	gateway   interfaces.IPaymentGateway
	creds     config.Razorpay

	gatewayTimeout time.Duration
	storeTimeout   time.Duration
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(reminders interfaces.IReminderRepository, events interfaces.IPaymentEventRepository, gateway interfaces.IPaymentGateway, creds config.Razorpay, gatewayTimeout, storeTimeout time.Duration) *PaymentUseCase {
	if gatewayTimeout <= 0 {
		gatewayTimeout = 10 * time.Second
	}
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &PaymentUseCase{
		reminders:      reminders,
		events:         events,
		gateway:        gateway,
		creds:          creds,
		gatewayTimeout: gatewayTimeout,
		storeTimeout:   storeTimeout,
	}
}

func (u *PaymentUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	log.Printf("[payment][usecase] create-order start amount=%.2f currency=%s reminder_id=%s", in.Amount, in.Currency, in.ReminderID)

	if in.Amount <= 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		log.Printf("[payment][usecase] invalid amount amount=%v", in.Amount)
		return entities.Order{}, ErrInvalidAmount
	}
	if u.gateway == nil || !u.creds.Configured() {
		log.Printf("[payment][usecase] payments not configured")
		return entities.Order{}, ErrPaymentsNotConfigured
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = "INR"
	}

	reminderID := strings.TrimSpace(in.ReminderID)
	receipt := strings.TrimSpace(in.Receipt)
	if receipt == "" {
		if reminderID != "" {
			receipt = "receipt_" + reminderID
		} else {
			receipt = "rcpt_" + uuid.NewString()
		}
	}

	req := entities.OrderRequest{
		Amount:   int64(math.Round(in.Amount * 100)),
		Currency: currency,
		Receipt:  receipt,
	}
	if reminderID != "" {
		// Echoed back in payment.captured webhooks; this is how webhook
		// events are reconciled to a reminder.
		req.Notes = map[string]string{"reminder_id": reminderID}
	}

	callCtx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
	defer cancel()

	order, err := u.gateway.CreateOrder(callCtx, req)
	if err != nil {
		log.Printf("[payment][usecase] gateway create-order failed receipt=%s err=%v", receipt, err)
		return entities.Order{}, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	log.Printf("[payment][usecase] create-order success order_id=%s amount=%d", order.ID, order.Amount)

	return order, nil
}

func (u *PaymentUseCase) VerifyPayment(ctx context.Context, claim VerificationClaim) (entities.Reminder, error) {
	orderID := strings.TrimSpace(claim.OrderID)
	paymentID := strings.TrimSpace(claim.PaymentID)
	sig := strings.TrimSpace(claim.Signature)
	reminderID := strings.TrimSpace(claim.ReminderID)

	log.Printf("[payment][usecase] verify start order_id=%s payment_id=%s reminder_id=%s", orderID, paymentID, reminderID)

	if orderID == "" || paymentID == "" || sig == "" || reminderID == "" {
		log.Printf("[payment][usecase] verify missing fields")
		return entities.Reminder{}, ErrMissingFields
	}
	if u.creds.KeySecret == "" {
		log.Printf("[payment][usecase] payments not configured")
		return entities.Reminder{}, ErrPaymentsNotConfigured
	}

	if !signature.Verify(u.creds.KeySecret, signature.PaymentMessage(orderID, paymentID), sig) {
		log.Printf("[payment][usecase] SIGNATURE MISMATCH order_id=%s payment_id=%s", orderID, paymentID)
		return entities.Reminder{}, ErrInvalidSignature
	}
	log.Printf("[payment][usecase] signature valid order_id=%s payment_id=%s", orderID, paymentID)

	// A charged payment must land even if the client goes away mid-request.
	applyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.storeTimeout)
	defer cancel()

	now := time.Now().UTC()
	claimRaw, _ := json.Marshal(map[string]string{
		"order_id":    orderID,
		"payment_id":  paymentID,
		"reminder_id": reminderID,
	})
	err := u.events.Record(applyCtx, entities.PaymentEvent{
		PaymentID:  paymentID,
		OrderID:    orderID,
		ReminderID: reminderID,
		Source:     entities.PaymentEventSourceVerify,
		ReceivedAt: now,
		PayloadRaw: claimRaw,
	})
	switch {
	case errors.Is(err, interfaces.ErrDuplicatePaymentEvent):
		// Already observed (earlier verify or webhook). Re-applying MarkPaid
		// is safe: paid_at keeps its first value.
		log.Printf("[payment][usecase] duplicate claim payment_id=%s; reapplying idempotently", paymentID)
	case err != nil:
		log.Printf("[payment][usecase] ledger record failed payment_id=%s err=%v", paymentID, err)
		return entities.Reminder{}, err
	}

	rem, err := u.reminders.MarkPaid(applyCtx, reminderID, now)
	if err != nil {
		log.Printf("[payment][usecase] mark-paid failed reminder_id=%s err=%v", reminderID, err)
		return entities.Reminder{}, err
	}
	if rem.ID == "" {
		log.Printf("[payment][usecase] reminder not found reminder_id=%s (signature was valid)", reminderID)
		return entities.Reminder{}, ErrReminderNotFound
	}

	log.Printf("[payment][usecase] verify success reminder_id=%s paid_at=%v", rem.ID, rem.PaidAt)
	return rem, nil
}

func (u *PaymentUseCase) ProcessWebhook(ctx context.Context, rawBody []byte, sig string) (WebhookOutcome, error) {
	secret := u.creds.WebhookSecretOrFallback()
	if secret == "" {
		log.Printf("[payment][webhook] payments not configured")
		return WebhookOutcome{}, ErrPaymentsNotConfigured
	}

	// Verification runs over the exact bytes the gateway sent; parsing first
	// and reserializing would change the message.
	if !signature.Verify(secret, rawBody, strings.TrimSpace(sig)) {
		log.Printf("[payment][webhook] SIGNATURE MISMATCH body_len=%d", len(rawBody))
		return WebhookOutcome{}, ErrInvalidSignature
	}

	var event entities.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		log.Printf("[payment][webhook] payload unmarshal failed body_len=%d err=%v", len(rawBody), err)
		return WebhookOutcome{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	log.Printf("[payment][webhook] event received event=%s", event.Event)

	outcome := WebhookOutcome{Event: event.Event}
	if event.Event != entities.WebhookEventPaymentCaptured {
		return outcome, nil
	}

	payment := event.Payload.Payment.Entity
	if payment.ID == "" {
		log.Printf("[payment][webhook] payment.captured without payment id")
		return WebhookOutcome{}, fmt.Errorf("%w: missing payment id", ErrMalformedPayload)
	}
	outcome.PaymentID = payment.ID
	outcome.OrderID = payment.OrderID
	outcome.ReminderID = payment.ReminderID()
	log.Printf("[payment][webhook] payment captured payment_id=%s order_id=%s reminder_id=%s", payment.ID, payment.OrderID, outcome.ReminderID)

	applyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.storeTimeout)
	defer cancel()

	err := u.events.Record(applyCtx, entities.PaymentEvent{
		PaymentID:  payment.ID,
		OrderID:    payment.OrderID,
		ReminderID: outcome.ReminderID,
		Source:     entities.PaymentEventSourceWebhook,
		ReceivedAt: time.Now().UTC(),
		PayloadRaw: rawBody,
	})
	switch {
	case errors.Is(err, interfaces.ErrDuplicatePaymentEvent):
		log.Printf("[payment][webhook] duplicate event payment_id=%s; acknowledging without effects", payment.ID)
		outcome.Duplicate = true
		return outcome, nil
	case err != nil:
		log.Printf("[payment][webhook] ledger record failed payment_id=%s err=%v", payment.ID, err)
		return WebhookOutcome{}, err
	}

	if outcome.ReminderID == "" {
		// Order was created without a reminder reference; nothing to
		// reconcile, the recorded event is the whole effect.
		return outcome, nil
	}

	rem, err := u.reminders.MarkPaid(applyCtx, outcome.ReminderID, time.Now().UTC())
	if err != nil {
		log.Printf("[payment][webhook] mark-paid failed reminder_id=%s err=%v", outcome.ReminderID, err)
		return WebhookOutcome{}, err
	}
	if rem.ID == "" {
		// Not a security event; the signature was the gateway's. Ack anyway.
		log.Printf("[payment][webhook] reminder not found reminder_id=%s", outcome.ReminderID)
		return outcome, nil
	}

	outcome.Applied = true
	log.Printf("[payment][webhook] reminder marked paid reminder_id=%s", rem.ID)
	return outcome, nil
}
