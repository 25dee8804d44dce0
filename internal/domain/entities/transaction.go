package entities

import "time"

// Transaction is the append-only record of a completed top-up.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (driver_phone-index): driver_phone
//
// Write-once: a transaction is emitted exactly when an order reaches
// StatusSucceeded and is never mutated afterwards.

type Transaction struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	PaymentRef      string    `json:"payment_ref"`
	DriverPhone     string    `json:"driver_phone"`
	DriverName      string    `json:"driver_name"`
	Amount          int64     `json:"amount"`
	PreviousBalance int64     `json:"previous_balance"`
	NewBalance      int64     `json:"new_balance"`
	Type            string    `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
}

const TransactionTypeTopup = "topup"
