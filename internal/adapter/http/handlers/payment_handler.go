package handlers

import (
	"errors"
	"log"
	"net/http"

	request "remindpay/internal/adapter/http/dto/request"
	response "remindpay/internal/adapter/http/dto/response"
	"remindpay/internal/usecase"
	"remindpay/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the client-originated payment routes: order
// creation and verification of checkout signatures.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	keyID   string
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, keyID string) *PaymentHandler {
	return &PaymentHandler{usecase: uc, keyID: keyID}
}

// CreateOrder creates a Razorpay order for a reminder payment.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create-order invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		Amount:     payload.Amount,
		Currency:   payload.Currency,
		Receipt:    payload.Receipt,
		ReminderID: payload.ReminderID,
	})
	if err != nil {
		log.Printf("[payment][handler] create-order failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order success order_id=%s", order.ID)

	c.JSON(http.StatusOK, response.FromOrder(order, h.keyID))
}

// VerifyPayment validates a client-submitted payment proof and marks the
// reminder paid.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] verify invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, pkg.HTTPError{Message: "Missing required fields"})
		return
	}
	if !payload.Complete() {
		log.Printf("[payment][handler] verify missing fields")
		c.JSON(http.StatusBadRequest, pkg.HTTPError{Message: "Missing required fields"})
		return
	}

	rem, err := h.usecase.VerifyPayment(c.Request.Context(), usecase.VerificationClaim{
		OrderID:    payload.RazorpayOrderID,
		PaymentID:  payload.RazorpayPaymentID,
		Signature:  payload.RazorpaySignature,
		ReminderID: payload.ReminderID,
	})
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		c.JSON(http.StatusBadRequest, pkg.HTTPError{Message: "Missing required fields"})
	case errors.Is(err, usecase.ErrInvalidSignature):
		// Security rejection: the claim did not come from the gateway.
		c.JSON(http.StatusBadRequest, response.VerifyRejection{Validated: false, Message: "Invalid signature"})
	case errors.Is(err, usecase.ErrReminderNotFound):
		// The signature was valid; only the target record is absent.
		c.JSON(http.StatusNotFound, response.VerifyRejection{Validated: true, Message: "Reminder not found"})
	case err != nil:
		log.Printf("[payment][handler] verify failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	default:
		log.Printf("[payment][handler] verify success reminder_id=%s", rem.ID)
		c.JSON(http.StatusOK, response.FromReminder(rem))
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", "Missing required fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentsNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENTS_NOT_CONFIGURED", "Payment subsystem not configured", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrGatewayFailure):
		// The true cause is logged upstream; callers get a generic message.
		return pkg.NewDomainError("GATEWAY_ERROR", "Failed to create order", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrReminderNotFound):
		return pkg.NewDomainErrorSimple("REMINDER_NOT_FOUND", "Reminder not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
