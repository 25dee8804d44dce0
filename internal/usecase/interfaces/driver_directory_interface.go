package interfaces

import (
	"context"

	"bakusam_topup/internal/domain/entities"
)

// IDriverDirectory abstracts the external driver directory (DynamoDB here,
// a spreadsheet in other deployments).
//
// GetByPhone returns a zero-value Driver (empty Phone) when the phone is not
// registered; an error only signals an I/O failure.
//
// UpdateBalance must be safe against concurrent updates to the same phone:
// the write only applies while the stored balance still equals oldBalance,
// otherwise ErrBalanceConflict is returned and the caller re-reads.
type IDriverDirectory interface {
	GetByPhone(ctx context.Context, phone string) (entities.Driver, error)
	UpdateBalance(ctx context.Context, phone string, oldBalance, newBalance int64) error
}
