package response

import (
	"time"

	"bakusam_topup/internal/domain/entities"
)

// MessageResponse is what the bridge relays back to the driver. Order is
// only set for a successful TOPUP command.
type MessageResponse struct {
	Reply string         `json:"reply"`
	Order *OrderResponse `json:"order,omitempty"`
}

type OrderResponse struct {
	OrderID    string    `json:"order_id"`
	PaymentRef string    `json:"payment_ref"`
	Amount     int64     `json:"amount"`
	PaymentURL string    `json:"payment_url,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func FromOrderTicket(t entities.OrderTicket) *OrderResponse {
	return &OrderResponse{
		OrderID:    t.OrderID,
		PaymentRef: t.PaymentRef,
		Amount:     t.Amount,
		PaymentURL: t.PaymentURL,
		ExpiresAt:  t.ExpiresAt,
	}
}
