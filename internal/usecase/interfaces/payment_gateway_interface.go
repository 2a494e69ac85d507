package interfaces

import (
	"context"

	"remindpay/internal/domain/entities"
)

// IPaymentGateway abstracts the upstream payment provider (Razorpay).
//
// CreateOrder takes a normalized minor-unit order request and returns the
// provider's order handle; the handle id is what the checkout UI opens.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error)
}
