package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a single amount received against a registration. Both direct
// collection and wallet application create a Payment row, so the sum of paid
// payments is the authoritative total for the ledger.
type Payment struct {
	ID             uuid.UUID
	RegistrationID uuid.UUID
	Amount         decimal.Decimal
	Date           time.Time
	IsPaid         bool
	Note           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPayment creates a new Payment entity.
func NewPayment(registrationID uuid.UUID, amount decimal.Decimal, date time.Time, note string) *Payment {
	now := time.Now().UTC()

	return &Payment{
		ID:             uuid.New(),
		RegistrationID: registrationID,
		Amount:         amount,
		Date:           date,
		IsPaid:         true,
		Note:           note,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
