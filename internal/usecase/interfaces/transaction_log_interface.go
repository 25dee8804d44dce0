package interfaces

import (
	"context"

	"bakusam_topup/internal/domain/entities"
)

// ITransactionLog is the append-only audit sink for completed top-ups.
// Records are write-once; Append must refuse to overwrite an existing id.
type ITransactionLog interface {
	Append(ctx context.Context, tx entities.Transaction) error
	ListByDriver(ctx context.Context, phone string, limit int) ([]entities.Transaction, error)
}
