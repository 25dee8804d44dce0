package validation

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPhone      = errors.New("invalid whatsapp phone number")
	ErrAmountOutOfRange  = errors.New("topup amount out of range")
	ErrAmountNotMultiple = errors.New("topup amount not a multiple of 1000")
)

// Top-up amount policy, whole rupiah.
const (
	MinTopupAmount int64 = 1_000
	MaxTopupAmount int64 = 10_000_000
	AmountStep     int64 = 1_000
)

// NormalizePhone strips non-digits and canonicalizes an Indonesian mobile
// number to the 62xxx national form. It does not validate; see ValidatePhone.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n := b.String()
	if strings.HasPrefix(n, "0") {
		n = "62" + n[1:]
	}
	return n
}

// ValidatePhone normalizes and validates an Indonesian mobile number.
// Accepted inputs: 628xxx, 08xxx, or already-normalized 62xxx, 10-15 digits
// total after normalization. Pure; no I/O.
func ValidatePhone(phone string) (string, error) {
	n := NormalizePhone(phone)
	if len(n) < 10 || len(n) > 15 {
		return "", ErrInvalidPhone
	}
	if !strings.HasPrefix(n, "628") {
		return "", ErrInvalidPhone
	}
	return n, nil
}

// ValidateAmount checks the top-up amount policy: integer rupiah in
// [MinTopupAmount, MaxTopupAmount] inclusive and a multiple of AmountStep.
// Pure; no I/O.
func ValidateAmount(amount int64) error {
	if amount < MinTopupAmount || amount > MaxTopupAmount {
		return ErrAmountOutOfRange
	}
	if amount%AmountStep != 0 {
		return ErrAmountNotMultiple
	}
	return nil
}
