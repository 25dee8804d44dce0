package entities

import "time"

// GatewayEventKind classifies an asynchronous payment status notification.

type GatewayEventKind string

const (
	EventSuccess   GatewayEventKind = "success"
	EventPending   GatewayEventKind = "pending"
	EventExpired   GatewayEventKind = "expired"
	EventFailed    GatewayEventKind = "failed"
	EventCancelled GatewayEventKind = "cancelled"
)

// PaymentHandle is what the gateway returns for a freshly created payment:
// an opaque reference plus everything the driver needs to pay.
type PaymentHandle struct {
	Ref        string    `json:"ref"`
	PaymentURL string    `json:"payment_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// GatewayEvent is a verified webhook notification from the payment provider.
// Events only reach the orchestrator after their signature checked out.
type GatewayEvent struct {
	Kind       GatewayEventKind `json:"kind"`
	OrderID    string           `json:"order_id"`
	PaymentRef string           `json:"payment_ref"`
	Amount     int64            `json:"amount"`
	RawStatus  string           `json:"raw_status"`
}
