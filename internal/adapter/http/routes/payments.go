package routes

import (
	"remindpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

// addPaymentRoutes registers the payment endpoints. The webhook is left
// unauthenticated: the gateway carries no user token and its body signature
// is the trust anchor instead.
func addPaymentRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/create-order", auth, paymentHandler.CreateOrder)
		payments.POST("/verify", auth, paymentHandler.VerifyPayment)
		payments.POST("/webhook", webhookHandler.HandleWebhook)
	}
}
