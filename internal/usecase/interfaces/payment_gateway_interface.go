package interfaces

import (
	"context"

	"bakusam_topup/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Midtrans Snap).
//
// CreatePayment registers a payable transaction for orderID and returns the
// handle (token, redirect URL, expiry) the driver uses to pay.
//
// ParseWebhook verifies the provider's authenticity signature before trusting
// the payload; an event failing verification never reaches the orchestrator.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, orderID string, amount int64, customer entities.Driver) (entities.PaymentHandle, error)
	ParseWebhook(rawPayload []byte) (entities.GatewayEvent, error)
}
