// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// RegistrationRepository defines the interface for registration persistence operations.
type RegistrationRepository interface {
	// Create creates a new registration in the database.
	Create(ctx context.Context, registration *entity.Registration) error

	// FindByID retrieves a registration by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error)

	// FindByStudentAndGroup retrieves the registration binding a student to a group.
	FindByStudentAndGroup(ctx context.Context, studentID, groupID uuid.UUID) (*entity.Registration, error)

	// FindByGroup retrieves all registrations for a group.
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Registration, error)

	// FindByStudent retrieves all registrations for a student.
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Registration, error)

	// ExistsByStudentAndGroup checks whether the student is already registered
	// in the group.
	ExistsByStudentAndGroup(ctx context.Context, studentID, groupID uuid.UUID) (bool, error)

	// UpdateDiscount sets the absolute discount amount on a registration.
	// This is an independently-authorized write path with no wallet check.
	UpdateDiscount(ctx context.Context, id uuid.UUID, discountAmount decimal.Decimal) error

	// UpdateStatus persists the derived payment status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus) error

	// Delete soft-deletes a registration.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create creates a new payment in the database.
	Create(ctx context.Context, payment *entity.Payment) error

	// ListByRegistration retrieves all payments for a registration, newest first.
	ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]*entity.Payment, error)

	// SumPaidByRegistration returns the sum of paid payment amounts for a registration.
	SumPaidByRegistration(ctx context.Context, registrationID uuid.UUID) (decimal.Decimal, error)

	// SumPaidByRegistrations returns per-registration sums of paid payment
	// amounts for the given registration IDs.
	SumPaidByRegistrations(ctx context.Context, registrationIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}
