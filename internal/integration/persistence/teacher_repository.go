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

// teacherRepository implements the adapter.TeacherRepository interface.
type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository creates a new teacher repository instance.
func NewTeacherRepository(db *gorm.DB) adapter.TeacherRepository {
	return &teacherRepository{
		db: db,
	}
}

// Create creates a new teacher in the database.
func (r *teacherRepository) Create(ctx context.Context, teacher *entity.Teacher) error {
	teacherModel := model.TeacherFromEntity(teacher)
	result := r.db.WithContext(ctx).Create(teacherModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a teacher by its ID.
func (r *teacherRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	var teacherModel model.TeacherModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&teacherModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTeacherNotFound
		}
		return nil, result.Error
	}
	return teacherModel.ToEntity(), nil
}

// List retrieves all teachers ordered by name.
func (r *teacherRepository) List(ctx context.Context) ([]*entity.Teacher, error) {
	var teacherModels []model.TeacherModel
	result := r.db.WithContext(ctx).
		Order("first_name ASC, last_name ASC").
		Find(&teacherModels)
	if result.Error != nil {
		return nil, result.Error
	}

	teachers := make([]*entity.Teacher, len(teacherModels))
	for i, tm := range teacherModels {
		teachers[i] = tm.ToEntity()
	}
	return teachers, nil
}

// Update updates an existing teacher in the database.
func (r *teacherRepository) Update(ctx context.Context, teacher *entity.Teacher) error {
	teacherModel := model.TeacherFromEntity(teacher)
	result := r.db.WithContext(ctx).Save(teacherModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a teacher from the database.
func (r *teacherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TeacherModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
