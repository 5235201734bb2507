package costs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CreateTemplateInput represents the input for creating a cost template.
type CreateTemplateInput struct {
	Name      string
	Amount    decimal.Decimal
	Type      entity.CostType
	Frequency entity.CostFrequency
	GroupID   *uuid.UUID
	Notes     string
}

// CreateTemplateUseCase creates a recurrence rule from which the generator
// materializes concrete costs.
type CreateTemplateUseCase struct {
	templateRepo adapter.CostTemplateRepository
	groupRepo    adapter.GroupRepository
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(templateRepo adapter.CostTemplateRepository, groupRepo adapter.GroupRepository) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{templateRepo: templateRepo, groupRepo: groupRepo}
}

// Execute validates and persists the template. New templates start active.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*entity.CostTemplate, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"template amount must be positive",
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

	template := entity.NewCostTemplate(input.Name, input.Amount, input.Type, input.Frequency, input.GroupID, input.Notes)
	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create cost template: %w", err)
	}
	return template, nil
}

// ListTemplatesUseCase lists all cost templates.
type ListTemplatesUseCase struct {
	templateRepo adapter.CostTemplateRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateRepo adapter.CostTemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{templateRepo: templateRepo}
}

// Execute returns all templates, active and inactive.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context) ([]*entity.CostTemplate, error) {
	templates, err := uc.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost templates: %w", err)
	}
	return templates, nil
}

// UpdateTemplateInput represents a partial template update. Nil fields are
// left unchanged. Deactivating a template stops generation without touching
// costs already materialized from it.
type UpdateTemplateInput struct {
	TemplateID uuid.UUID
	Name       *string
	Amount     *decimal.Decimal
	Frequency  *entity.CostFrequency
	Notes      *string
	Active     *bool
}

// UpdateTemplateUseCase updates an existing cost template.
type UpdateTemplateUseCase struct {
	templateRepo adapter.CostTemplateRepository
}

// NewUpdateTemplateUseCase creates a new UpdateTemplateUseCase instance.
func NewUpdateTemplateUseCase(templateRepo adapter.CostTemplateRepository) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{templateRepo: templateRepo}
}

// Execute applies the provided fields and persists the template.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, input UpdateTemplateInput) (*entity.CostTemplate, error) {
	template, err := uc.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		return nil, domainerror.NewGenerationError(
			domainerror.ErrCodeTemplateNotFound,
			"cost template not found",
			err,
		)
	}

	if input.Name != nil {
		template.Name = *input.Name
	}
	if input.Amount != nil {
		if input.Amount.Sign() <= 0 {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeInvalidAmount,
				"template amount must be positive",
				domainerror.ErrInvalidAmount,
			)
		}
		template.Amount = *input.Amount
	}
	if input.Frequency != nil {
		if !entity.IsValidCostFrequency(*input.Frequency) {
			return nil, domainerror.NewGenerationError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be daily, weekly, monthly or yearly",
				domainerror.ErrInvalidFrequency,
			)
		}
		template.Frequency = *input.Frequency
	}
	if input.Notes != nil {
		template.Notes = *input.Notes
	}
	if input.Active != nil {
		template.Active = *input.Active
	}

	if err := uc.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update cost template: %w", err)
	}
	return template, nil
}

// DeleteTemplateUseCase soft-deletes a cost template.
type DeleteTemplateUseCase struct {
	templateRepo adapter.CostTemplateRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(templateRepo adapter.CostTemplateRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{templateRepo: templateRepo}
}

// Execute removes the template. Generated costs stay.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.templateRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewGenerationError(
			domainerror.ErrCodeTemplateNotFound,
			"cost template not found",
			err,
		)
	}
	if err := uc.templateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete cost template: %w", err)
	}
	return nil
}
