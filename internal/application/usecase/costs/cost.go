// Package costs provides use cases for managing costs, recurring cost
// templates, and teacher disbursements.
package costs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CreateCostInput represents the input for manually recording a cost.
type CreateCostInput struct {
	Name      string
	Amount    decimal.Decimal
	Type      entity.CostType
	Frequency entity.CostFrequency
	StartDate time.Time
	DueDate   time.Time
	Notes     string
	GroupID   *uuid.UUID
}

// CreateCostUseCase records a one-off cost entered by hand. Generated costs
// come from the cost generator, not this path.
type CreateCostUseCase struct {
	costRepo  adapter.CostRepository
	groupRepo adapter.GroupRepository
}

// NewCreateCostUseCase creates a new CreateCostUseCase instance.
func NewCreateCostUseCase(costRepo adapter.CostRepository, groupRepo adapter.GroupRepository) *CreateCostUseCase {
	return &CreateCostUseCase{costRepo: costRepo, groupRepo: groupRepo}
}

// Execute validates and persists the cost.
func (uc *CreateCostUseCase) Execute(ctx context.Context, input CreateCostInput) (*entity.Cost, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"cost amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	if !entity.IsValidCostFrequency(input.Frequency) {
		return nil, domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be daily, weekly, monthly or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}
	if input.GroupID != nil {
		if _, err := uc.groupRepo.FindByID(ctx, *input.GroupID); err != nil {
			return nil, domainerror.NewRegistrationError(
				domainerror.ErrCodeGroupNotFound,
				"group not found",
				err,
			)
		}
	}

	cost := entity.NewCost(input.Name, input.Amount, input.Type, input.Frequency,
		input.StartDate, input.DueDate, input.Notes, nil, input.GroupID)
	if err := uc.costRepo.Create(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to create cost: %w", err)
	}
	return cost, nil
}

// ListCostsUseCase lists all costs, newest due date first.
type ListCostsUseCase struct {
	costRepo adapter.CostRepository
}

// NewListCostsUseCase creates a new ListCostsUseCase instance.
func NewListCostsUseCase(costRepo adapter.CostRepository) *ListCostsUseCase {
	return &ListCostsUseCase{costRepo: costRepo}
}

// Execute returns all costs.
func (uc *ListCostsUseCase) Execute(ctx context.Context) ([]*entity.Cost, error) {
	costs, err := uc.costRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list costs: %w", err)
	}
	return costs, nil
}

// UpdateCostInput represents a partial cost update. Nil fields are left
// unchanged.
type UpdateCostInput struct {
	CostID  uuid.UUID
	Name    *string
	Amount  *decimal.Decimal
	DueDate *time.Time
	Paid    *bool
	Notes   *string
}

// UpdateCostUseCase updates an existing cost, including flipping it to paid.
type UpdateCostUseCase struct {
	costRepo adapter.CostRepository
}

// NewUpdateCostUseCase creates a new UpdateCostUseCase instance.
func NewUpdateCostUseCase(costRepo adapter.CostRepository) *UpdateCostUseCase {
	return &UpdateCostUseCase{costRepo: costRepo}
}

// Execute applies the provided fields and persists the cost.
func (uc *UpdateCostUseCase) Execute(ctx context.Context, input UpdateCostInput) (*entity.Cost, error) {
	cost, err := uc.costRepo.FindByID(ctx, input.CostID)
	if err != nil {
		return nil, domainerror.NewGenerationError(
			domainerror.ErrCodeCostNotFound,
			"cost not found",
			err,
		)
	}

	if input.Name != nil {
		cost.Name = *input.Name
	}
	if input.Amount != nil {
		if input.Amount.Sign() <= 0 {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeInvalidAmount,
				"cost amount must be positive",
				domainerror.ErrInvalidAmount,
			)
		}
		cost.Amount = *input.Amount
	}
	if input.DueDate != nil {
		cost.DueDate = *input.DueDate
	}
	if input.Paid != nil {
		cost.Paid = *input.Paid
	}
	if input.Notes != nil {
		cost.Notes = *input.Notes
	}

	if err := uc.costRepo.Update(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to update cost: %w", err)
	}
	return cost, nil
}

// DeleteCostUseCase soft-deletes a cost.
type DeleteCostUseCase struct {
	costRepo adapter.CostRepository
}

// NewDeleteCostUseCase creates a new DeleteCostUseCase instance.
func NewDeleteCostUseCase(costRepo adapter.CostRepository) *DeleteCostUseCase {
	return &DeleteCostUseCase{costRepo: costRepo}
}

// Execute removes the cost.
func (uc *DeleteCostUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.costRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewGenerationError(
			domainerror.ErrCodeCostNotFound,
			"cost not found",
			err,
		)
	}
	if err := uc.costRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete cost: %w", err)
	}
	return nil
}
