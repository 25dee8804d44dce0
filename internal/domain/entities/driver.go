package entities

import "time"

// Driver is a row of the driver directory.
//
// Storage model (DynamoDB):
//   - PK: phone (normalized 62xxx form)
//
// Balance is whole rupiah. All balance math is integer-only; no floating
// point is permitted anywhere near it.

type Driver struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	Balance    int64     `json:"balance"`
	Rating     int       `json:"rating,omitempty"`
	Status     string    `json:"status,omitempty"`
	LastUpdate time.Time `json:"last_update,omitempty"`
}
