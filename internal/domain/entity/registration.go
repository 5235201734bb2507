package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegistrationStatus is the derived payment status of a registration.
// Status rank is monotonic in paid amount: DUE < PARTIAL < PAID.
type RegistrationStatus string

const (
	RegistrationStatusDue     RegistrationStatus = "DUE"
	RegistrationStatusPartial RegistrationStatus = "PARTIAL"
	RegistrationStatusPaid    RegistrationStatus = "PAID"
)

// Registration binds one student to one group with the negotiated terms.
type Registration struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	GroupID        uuid.UUID
	AgreedPrice    decimal.Decimal // Post-negotiation price
	DiscountAmount decimal.Decimal // Persisted as an absolute amount
	DepositPct     decimal.Decimal
	Status         RegistrationStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// NewRegistration creates a new Registration entity.
func NewRegistration(studentID, groupID uuid.UUID, agreedPrice, discountAmount, depositPct decimal.Decimal) *Registration {
	now := time.Now().UTC()

	return &Registration{
		ID:             uuid.New(),
		StudentID:      studentID,
		GroupID:        groupID,
		AgreedPrice:    agreedPrice,
		DiscountAmount: discountAmount,
		DepositPct:     depositPct,
		Status:         RegistrationStatusDue,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
