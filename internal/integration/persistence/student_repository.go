// Package persistence implements repository interfaces for database operations.
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

// studentRepository implements the adapter.StudentRepository interface.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository instance.
func NewStudentRepository(db *gorm.DB) adapter.StudentRepository {
	return &studentRepository{
		db: db,
	}
}

// Create creates a new student in the database.
func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentModel := model.StudentFromEntity(student)
	result := r.db.WithContext(ctx).Create(studentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a student by its ID.
func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentModel model.StudentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&studentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStudentNotFound
		}
		return nil, result.Error
	}
	return studentModel.ToEntity(), nil
}

// List retrieves all students ordered by name.
func (r *studentRepository) List(ctx context.Context) ([]*entity.Student, error) {
	var studentModels []model.StudentModel
	result := r.db.WithContext(ctx).
		Order("first_name ASC, last_name ASC").
		Find(&studentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	students := make([]*entity.Student, len(studentModels))
	for i, sm := range studentModels {
		students[i] = sm.ToEntity()
	}
	return students, nil
}

// Update updates an existing student in the database.
func (r *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	studentModel := model.StudentFromEntity(student)
	result := r.db.WithContext(ctx).Save(studentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a student from the database.
func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.StudentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
