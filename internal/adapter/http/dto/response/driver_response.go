package response

import (
	"time"

	"bakusam_topup/internal/domain/entities"
)

type DriverResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Balance int64  `json:"balance"`
	Status  string `json:"status,omitempty"`
	Rating  int    `json:"rating,omitempty"`
}

func FromDriver(d entities.Driver) DriverResponse {
	return DriverResponse{
		ID:      d.ID,
		Name:    d.Name,
		Phone:   d.Phone,
		Balance: d.Balance,
		Status:  d.Status,
		Rating:  d.Rating,
	}
}

type TransactionResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	Amount          int64     `json:"amount"`
	PreviousBalance int64     `json:"previous_balance"`
	NewBalance      int64     `json:"new_balance"`
	Type            string    `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		OrderID:         t.OrderID,
		Amount:          t.Amount,
		PreviousBalance: t.PreviousBalance,
		NewBalance:      t.NewBalance,
		Type:            string(t.Type),
		Timestamp:       t.Timestamp,
	}
}

func FromTransactions(ts []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTransaction(t))
	}
	return out
}
