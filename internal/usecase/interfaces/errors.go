package interfaces

import "errors"

// Errors shared between the collaborator implementations and the usecases
// that drive them.
var (
	ErrDuplicatePending = errors.New("driver already has a pending topup order")
	ErrOrderIDTaken     = errors.New("order id already used")
	ErrOrderNotFound    = errors.New("pending order not found")
	ErrBalanceConflict  = errors.New("driver balance changed concurrently")
	ErrDriverNotFound   = errors.New("driver not found in directory")
)
