package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/school-office/backend/internal/domain/entity"
)

// CostRepository defines the interface for cost persistence operations.
type CostRepository interface {
	// Create creates a new cost in the database.
	Create(ctx context.Context, cost *entity.Cost) error

	// FindByID retrieves a cost by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cost, error)

	// FindLatestByTemplate retrieves the most recently generated cost for a
	// template, by due date descending. Returns (nil, nil) when no cost has
	// been generated yet.
	FindLatestByTemplate(ctx context.Context, templateID uuid.UUID) (*entity.Cost, error)

	// List retrieves all costs, newest due date first.
	List(ctx context.Context) ([]*entity.Cost, error)

	// ListByGroup retrieves costs attributed to a specific group.
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Cost, error)

	// ListGeneral retrieves costs with no group attribution.
	ListGeneral(ctx context.Context) ([]*entity.Cost, error)

	// Update updates an existing cost.
	Update(ctx context.Context, cost *entity.Cost) error

	// Delete soft-deletes a cost.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CostTemplateRepository defines the interface for cost template persistence operations.
type CostTemplateRepository interface {
	// Create creates a new cost template in the database.
	Create(ctx context.Context, template *entity.CostTemplate) error

	// FindByID retrieves a cost template by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CostTemplate, error)

	// List retrieves all cost templates.
	List(ctx context.Context) ([]*entity.CostTemplate, error)

	// ListActive retrieves all active cost templates.
	ListActive(ctx context.Context) ([]*entity.CostTemplate, error)

	// Update updates an existing cost template.
	Update(ctx context.Context, template *entity.CostTemplate) error

	// Delete soft-deletes a cost template.
	Delete(ctx context.Context, id uuid.UUID) error
}
