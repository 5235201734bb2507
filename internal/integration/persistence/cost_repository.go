package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
	"github.com/school-office/backend/internal/integration/persistence/model"
)

// costRepository implements the adapter.CostRepository interface.
type costRepository struct {
	db *gorm.DB
}

// NewCostRepository creates a new cost repository instance.
func NewCostRepository(db *gorm.DB) adapter.CostRepository {
	return &costRepository{
		db: db,
	}
}

// Create creates a new cost in the database.
func (r *costRepository) Create(ctx context.Context, cost *entity.Cost) error {
	costModel := model.CostFromEntity(cost)
	result := r.db.WithContext(ctx).Create(costModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a cost by its ID.
func (r *costRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cost, error) {
	var costModel model.CostModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&costModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCostNotFound
		}
		return nil, result.Error
	}
	return costModel.ToEntity(), nil
}

// FindLatestByTemplate retrieves the most recently generated cost for a
// template, by due date descending. Returns (nil, nil) when no cost has been
// generated yet.
func (r *costRepository) FindLatestByTemplate(ctx context.Context, templateID uuid.UUID) (*entity.Cost, error) {
	var costModel model.CostModel
	result := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("due_date DESC").
		First(&costModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return costModel.ToEntity(), nil
}

// List retrieves all costs, newest due date first.
func (r *costRepository) List(ctx context.Context) ([]*entity.Cost, error) {
	var costModels []model.CostModel
	result := r.db.WithContext(ctx).
		Order("due_date DESC").
		Find(&costModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return costsToEntities(costModels), nil
}

// ListByGroup retrieves costs attributed to a specific group.
func (r *costRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Cost, error) {
	var costModels []model.CostModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("due_date DESC").
		Find(&costModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return costsToEntities(costModels), nil
}

// ListGeneral retrieves costs with no group attribution.
func (r *costRepository) ListGeneral(ctx context.Context) ([]*entity.Cost, error) {
	var costModels []model.CostModel
	result := r.db.WithContext(ctx).
		Where("group_id IS NULL").
		Order("due_date DESC").
		Find(&costModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return costsToEntities(costModels), nil
}

// Update updates an existing cost in the database.
func (r *costRepository) Update(ctx context.Context, cost *entity.Cost) error {
	costModel := model.CostFromEntity(cost)
	result := r.db.WithContext(ctx).Save(costModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a cost from the database.
func (r *costRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func costsToEntities(costModels []model.CostModel) []*entity.Cost {
	costs := make([]*entity.Cost, len(costModels))
	for i, cm := range costModels {
		costs[i] = cm.ToEntity()
	}
	return costs
}

// costTemplateRepository implements the adapter.CostTemplateRepository interface.
type costTemplateRepository struct {
	db *gorm.DB
}

// NewCostTemplateRepository creates a new cost template repository instance.
func NewCostTemplateRepository(db *gorm.DB) adapter.CostTemplateRepository {
	return &costTemplateRepository{
		db: db,
	}
}

// Create creates a new cost template in the database.
func (r *costTemplateRepository) Create(ctx context.Context, template *entity.CostTemplate) error {
	templateModel := model.CostTemplateFromEntity(template)
	result := r.db.WithContext(ctx).Create(templateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a cost template by its ID.
func (r *costTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CostTemplate, error) {
	var templateModel model.CostTemplateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&templateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTemplateNotFound
		}
		return nil, result.Error
	}
	return templateModel.ToEntity(), nil
}

// List retrieves all cost templates.
func (r *costTemplateRepository) List(ctx context.Context) ([]*entity.CostTemplate, error) {
	var templateModels []model.CostTemplateModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return templatesToEntities(templateModels), nil
}

// ListActive retrieves all active cost templates.
func (r *costTemplateRepository) ListActive(ctx context.Context) ([]*entity.CostTemplate, error) {
	var templateModels []model.CostTemplateModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return templatesToEntities(templateModels), nil
}

// Update updates an existing cost template in the database.
func (r *costTemplateRepository) Update(ctx context.Context, template *entity.CostTemplate) error {
	templateModel := model.CostTemplateFromEntity(template)
	result := r.db.WithContext(ctx).Save(templateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a cost template from the database.
func (r *costTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CostTemplateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func templatesToEntities(templateModels []model.CostTemplateModel) []*entity.CostTemplate {
	templates := make([]*entity.CostTemplate, len(templateModels))
	for i, tm := range templateModels {
		templates[i] = tm.ToEntity()
	}
	return templates
}
