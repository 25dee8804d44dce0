package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"bakusam_topup/internal/domain/entities"
	"bakusam_topup/internal/usecase/interfaces"
	"bakusam_topup/internal/validation"
)

// IBalanceUseCase serves the SALDO command and transaction history lookups.
type IBalanceUseCase interface {
	GetDriver(ctx context.Context, phone string) (entities.Driver, error)
	ListTransactions(ctx context.Context, phone string, limit int) ([]entities.Transaction, error)
}

type BalanceUseCase struct {
	directory interfaces.IDriverDirectory
	txlog     interfaces.ITransactionLog
	ioTimeout time.Duration
}

var _ IBalanceUseCase = (*BalanceUseCase)(nil)

func NewBalanceUseCase(directory interfaces.IDriverDirectory, txlog interfaces.ITransactionLog, ioTimeout time.Duration) *BalanceUseCase {
	if ioTimeout <= 0 {
		ioTimeout = 10 * time.Second
	}
	return &BalanceUseCase{directory: directory, txlog: txlog, ioTimeout: ioTimeout}
}

func (u *BalanceUseCase) GetDriver(ctx context.Context, phone string) (entities.Driver, error) {
	normalized, err := validation.ValidatePhone(phone)
	if err != nil {
		return entities.Driver{}, err
	}

	dctx, cancel := context.WithTimeout(ctx, u.ioTimeout)
	defer cancel()

	driver, err := u.directory.GetByPhone(dctx, normalized)
	if err != nil {
		log.Printf("[balance][usecase] directory lookup failed phone=%s err=%v", normalized, err)
		if errors.Is(err, context.DeadlineExceeded) {
			return entities.Driver{}, ErrDirectoryTimeout
		}
		return entities.Driver{}, err
	}
	if driver.Phone == "" {
		return entities.Driver{}, ErrUnknownDriver
	}
	return driver, nil
}

func (u *BalanceUseCase) ListTransactions(ctx context.Context, phone string, limit int) ([]entities.Transaction, error) {
	normalized, err := validation.ValidatePhone(phone)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	tctx, cancel := context.WithTimeout(ctx, u.ioTimeout)
	defer cancel()
	return u.txlog.ListByDriver(tctx, normalized, limit)
}
