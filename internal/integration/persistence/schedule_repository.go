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

// scheduleRepository implements the adapter.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository instance.
func NewScheduleRepository(db *gorm.DB) adapter.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// Create creates a new group schedule in the database.
func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.GroupSchedule) error {
	scheduleModel := model.ScheduleFromEntity(schedule)
	result := r.db.WithContext(ctx).Create(scheduleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a schedule by its ID.
func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GroupSchedule, error) {
	var scheduleModel model.GroupScheduleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&scheduleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrScheduleNotFound
		}
		return nil, result.Error
	}
	return scheduleModel.ToEntity(), nil
}

// ListAll retrieves all schedules across all groups.
func (r *scheduleRepository) ListAll(ctx context.Context) ([]*entity.GroupSchedule, error) {
	var scheduleModels []model.GroupScheduleModel
	result := r.db.WithContext(ctx).
		Order("day_of_week ASC, start_time ASC").
		Find(&scheduleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	schedules := make([]*entity.GroupSchedule, len(scheduleModels))
	for i, sm := range scheduleModels {
		schedules[i] = sm.ToEntity()
	}
	return schedules, nil
}

// ListByGroup retrieves the schedules for a group.
func (r *scheduleRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupSchedule, error) {
	var scheduleModels []model.GroupScheduleModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("day_of_week ASC, start_time ASC").
		Find(&scheduleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	schedules := make([]*entity.GroupSchedule, len(scheduleModels))
	for i, sm := range scheduleModels {
		schedules[i] = sm.ToEntity()
	}
	return schedules, nil
}

// Update updates an existing schedule in the database.
func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.GroupSchedule) error {
	scheduleModel := model.ScheduleFromEntity(schedule)
	result := r.db.WithContext(ctx).Save(scheduleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a schedule from the database.
func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GroupScheduleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
