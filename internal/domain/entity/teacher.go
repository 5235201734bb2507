package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Teacher represents a teacher paid by the hour.
type Teacher struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Phone      string
	Email      string
	HourlyRate decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewTeacher creates a new Teacher entity.
func NewTeacher(firstName, lastName, phone, email string, hourlyRate decimal.Decimal) *Teacher {
	now := time.Now().UTC()

	return &Teacher{
		ID:         uuid.New(),
		FirstName:  firstName,
		LastName:   lastName,
		Phone:      phone,
		Email:      email,
		HourlyRate: hourlyRate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
