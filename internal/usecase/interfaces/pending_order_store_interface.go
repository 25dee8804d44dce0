package interfaces

import (
	"bakusam_topup/internal/domain/entities"
)

// IPendingOrderStore is the single source of truth for in-flight top-up
// orders. It holds only non-terminal orders; finalizing removes the order
// atomically and records its terminal status so late duplicate events can be
// told apart from events for orders that never existed.
//
// All operations on a given key are mutually exclusive with respect to each
// other. At most one non-terminal order may exist per driver phone.
type IPendingOrderStore interface {
	// Insert adds a new order. ErrDuplicatePending when the driver already
	// has a non-terminal order; ErrOrderIDTaken when the id was ever used.
	Insert(order entities.TopupOrder) error

	// Get returns the live (non-terminal) order, if any.
	Get(orderID string) (entities.TopupOrder, bool)

	// GetByDriver returns the driver's live order, if any.
	GetByDriver(phone string) (entities.TopupOrder, bool)

	// MarkAwaitingConfirmation flips the order to StatusPending in place
	// (the gateway's "still processing" self-loop). ErrOrderNotFound when
	// there is no live order.
	MarkAwaitingConfirmation(orderID string) error

	// Finalize atomically removes the live order and records its terminal
	// status. Returns the removed order. ErrOrderNotFound when there is no
	// live order with that id.
	Finalize(orderID string, status entities.OrderStatus) (entities.TopupOrder, error)

	// FinalizedStatus reports the terminal status recorded for an order id,
	// if it was ever finalized.
	FinalizedStatus(orderID string) (entities.OrderStatus, bool)

	// Count returns the number of live orders.
	Count() int
}
