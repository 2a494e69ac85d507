package handlers

import (
	"errors"
	"log"
	"net/http"

	"remindpay/internal/usecase"

	"github.com/gin-gonic/gin"
)

const webhookSignatureHeader = "x-razorpay-signature"

// WebhookHandler handles gateway-originated payment callbacks. The route is
// unauthenticated: the body signature is the trust anchor.

type WebhookHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewWebhookHandler(uc usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleWebhook verifies and dispatches a gateway webhook. The body is read
// raw and handed to the use case untouched; the signature covers the exact
// bytes on the wire.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][webhook-handler] body read failed err=%v", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	outcome, err := h.usecase.ProcessWebhook(c.Request.Context(), raw, c.GetHeader(webhookSignatureHeader))
	switch {
	case errors.Is(err, usecase.ErrInvalidSignature):
		c.String(http.StatusBadRequest, "invalid signature")
	case err != nil:
		// Covers malformed payloads behind a valid signature and store
		// failures; details are already logged by the use case.
		c.String(http.StatusInternalServerError, "server error")
	default:
		log.Printf("[payment][webhook-handler] acknowledged event=%s payment_id=%s applied=%t duplicate=%t", outcome.Event, outcome.PaymentID, outcome.Applied, outcome.Duplicate)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
