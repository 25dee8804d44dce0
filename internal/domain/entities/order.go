package entities

import "time"

// OrderStatus represents the lifecycle of an in-flight top-up order.
//
// Domain notes:
//   - An order is created in StatusAwaitingPayment right after the gateway
//     returns a payable reference.
//   - StatusPending is the gateway's "still processing" self-loop; the order
//     stays in the live table.
//   - Terminal statuses never transition again. A terminal order leaves the
//     live table atomically with the transition.

type OrderStatus string

const (
	StatusAwaitingPayment OrderStatus = "awaiting_payment"
	StatusPending         OrderStatus = "pending"
	StatusSucceeded       OrderStatus = "succeeded"
	StatusExpired         OrderStatus = "expired"
	StatusFailed          OrderStatus = "failed"
	StatusCancelled       OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusSucceeded, StatusExpired, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// TopupOrder is one in-flight top-up request, tracked from creation to
// terminal outcome.
//
// Everything except Status is immutable after creation. DriverSnapshot keeps
// the directory record as read at admission time; receipts use it for
// name/email so completion never re-reads anything but the balance.

type TopupOrder struct {
	OrderID           string      `json:"order_id"`
	DriverPhone       string      `json:"driver_phone"`
	Amount            int64       `json:"amount"`
	GatewayPaymentRef string      `json:"gateway_payment_ref"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`

	DriverSnapshot Driver `json:"driver_snapshot"`
}

// OrderTicket is what the requester gets back to complete the payment.
type OrderTicket struct {
	OrderID    string    `json:"order_id"`
	PaymentRef string    `json:"payment_ref"`
	Amount     int64     `json:"amount"`
	PaymentURL string    `json:"payment_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
