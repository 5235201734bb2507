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

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// Create creates a new group in the database.
func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupModel := model.GroupFromEntity(group)
	result := r.db.WithContext(ctx).Create(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a group by its ID.
func (r *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupModel model.GroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGroupNotFound
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// List retrieves all groups ordered by name.
func (r *groupRepository) List(ctx context.Context) ([]*entity.Group, error) {
	var groupModels []model.GroupModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]*entity.Group, len(groupModels))
	for i, gm := range groupModels {
		groups[i] = gm.ToEntity()
	}
	return groups, nil
}

// Count returns the number of groups.
func (r *groupRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing group in the database.
func (r *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	groupModel := model.GroupFromEntity(group)
	result := r.db.WithContext(ctx).Save(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a group from the database.
func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GroupModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
