// Package registration provides use cases for enrolling students into groups.
// Payment-status math over registrations lives in the ledger package.
package registration

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CreateInput represents the input for registering a student into a group.
type CreateInput struct {
	StudentID      uuid.UUID
	GroupID        uuid.UUID
	AgreedPrice    decimal.Decimal
	DiscountAmount decimal.Decimal
	DepositPct     decimal.Decimal
}

// CreateUseCase registers a student into a group with negotiated terms.
type CreateUseCase struct {
	registrationRepo adapter.RegistrationRepository
	studentRepo      adapter.StudentRepository
	groupRepo        adapter.GroupRepository
}

// NewCreateUseCase creates a new CreateUseCase instance.
func NewCreateUseCase(
	registrationRepo adapter.RegistrationRepository,
	studentRepo adapter.StudentRepository,
	groupRepo adapter.GroupRepository,
) *CreateUseCase {
	return &CreateUseCase{
		registrationRepo: registrationRepo,
		studentRepo:      studentRepo,
		groupRepo:        groupRepo,
	}
}

// Execute validates references and terms, then persists the registration.
// The discount is clamped to [0, agreedPrice] on the way in, the same rule
// applied on discount edits.
func (uc *CreateUseCase) Execute(ctx context.Context, input CreateInput) (*entity.Registration, error) {
	if _, err := uc.studentRepo.FindByID(ctx, input.StudentID); err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeStudentNotFound,
			"student not found",
			err,
		)
	}
	if _, err := uc.groupRepo.FindByID(ctx, input.GroupID); err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}

	exists, err := uc.registrationRepo.ExistsByStudentAndGroup(ctx, input.StudentID, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}
	if exists {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeRegistrationExists,
			"student already registered in group",
			domainerror.ErrRegistrationExists,
		)
	}

	if input.AgreedPrice.Sign() < 0 {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeInvalidPrice,
			"agreed price must not be negative",
			domainerror.ErrInvalidPrice,
		)
	}
	discount := input.DiscountAmount
	if discount.Sign() < 0 {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeInvalidDiscount,
			"discount must not be negative",
			domainerror.ErrInvalidDiscount,
		)
	}
	if discount.GreaterThan(input.AgreedPrice) {
		discount = input.AgreedPrice
	}

	reg := entity.NewRegistration(input.StudentID, input.GroupID, input.AgreedPrice, discount, input.DepositPct)
	if err := uc.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return reg, nil
}

// GetUseCase reads a single registration.
type GetUseCase struct {
	registrationRepo adapter.RegistrationRepository
}

// NewGetUseCase creates a new GetUseCase instance.
func NewGetUseCase(registrationRepo adapter.RegistrationRepository) *GetUseCase {
	return &GetUseCase{registrationRepo: registrationRepo}
}

// Execute returns the registration or a not-found error.
func (uc *GetUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	reg, err := uc.registrationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeRegistrationNotFound,
			"registration not found",
			err,
		)
	}
	return reg, nil
}

// ListInput filters registrations by student and/or group. At least one
// filter must be set.
type ListInput struct {
	StudentID *uuid.UUID
	GroupID   *uuid.UUID
}

// ListUseCase lists registrations for a student or a group.
type ListUseCase struct {
	registrationRepo adapter.RegistrationRepository
}

// NewListUseCase creates a new ListUseCase instance.
func NewListUseCase(registrationRepo adapter.RegistrationRepository) *ListUseCase {
	return &ListUseCase{registrationRepo: registrationRepo}
}

// Execute returns the matching registrations.
func (uc *ListUseCase) Execute(ctx context.Context, input ListInput) ([]*entity.Registration, error) {
	switch {
	case input.StudentID != nil:
		regs, err := uc.registrationRepo.FindByStudent(ctx, *input.StudentID)
		if err != nil {
			return nil, fmt.Errorf("failed to list registrations: %w", err)
		}
		if input.GroupID != nil {
			filtered := regs[:0]
			for _, reg := range regs {
				if reg.GroupID == *input.GroupID {
					filtered = append(filtered, reg)
				}
			}
			regs = filtered
		}
		return regs, nil
	case input.GroupID != nil:
		regs, err := uc.registrationRepo.FindByGroup(ctx, *input.GroupID)
		if err != nil {
			return nil, fmt.Errorf("failed to list registrations: %w", err)
		}
		return regs, nil
	default:
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeRegistrationNotFound,
			"student_id or group_id filter is required",
			domainerror.ErrRegistrationNotFound,
		)
	}
}

// DeleteUseCase soft-deletes a registration. Payment rows are kept.
type DeleteUseCase struct {
	registrationRepo adapter.RegistrationRepository
}

// NewDeleteUseCase creates a new DeleteUseCase instance.
func NewDeleteUseCase(registrationRepo adapter.RegistrationRepository) *DeleteUseCase {
	return &DeleteUseCase{registrationRepo: registrationRepo}
}

// Execute removes the registration.
func (uc *DeleteUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.registrationRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewRegistrationError(
			domainerror.ErrCodeRegistrationNotFound,
			"registration not found",
			err,
		)
	}
	if err := uc.registrationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	return nil
}
