package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
	"github.com/school-office/backend/internal/integration/persistence/model"
)

// registrationRepository implements the adapter.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository instance.
func NewRegistrationRepository(db *gorm.DB) adapter.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// Create creates a new registration in the database.
func (r *registrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	registrationModel := model.RegistrationFromEntity(registration)
	result := r.db.WithContext(ctx).Create(registrationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a registration by its ID.
func (r *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	var registrationModel model.RegistrationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&registrationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRegistrationNotFound
		}
		return nil, result.Error
	}
	return registrationModel.ToEntity(), nil
}

// FindByStudentAndGroup retrieves the registration binding a student to a group.
func (r *registrationRepository) FindByStudentAndGroup(ctx context.Context, studentID, groupID uuid.UUID) (*entity.Registration, error) {
	var registrationModel model.RegistrationModel
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND group_id = ?", studentID, groupID).
		First(&registrationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRegistrationNotFound
		}
		return nil, result.Error
	}
	return registrationModel.ToEntity(), nil
}

// FindByGroup retrieves all registrations for a group.
func (r *registrationRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Registration, error) {
	var registrationModels []model.RegistrationModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&registrationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	registrations := make([]*entity.Registration, len(registrationModels))
	for i, rm := range registrationModels {
		registrations[i] = rm.ToEntity()
	}
	return registrations, nil
}

// FindByStudent retrieves all registrations for a student.
func (r *registrationRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*entity.Registration, error) {
	var registrationModels []model.RegistrationModel
	result := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&registrationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	registrations := make([]*entity.Registration, len(registrationModels))
	for i, rm := range registrationModels {
		registrations[i] = rm.ToEntity()
	}
	return registrations, nil
}

// ExistsByStudentAndGroup checks whether the student is already registered in
// the group.
func (r *registrationRepository) ExistsByStudentAndGroup(ctx context.Context, studentID, groupID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("student_id = ? AND group_id = ?", studentID, groupID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// UpdateDiscount sets the absolute discount amount on a registration.
func (r *registrationRepository) UpdateDiscount(ctx context.Context, id uuid.UUID, discountAmount decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"discount_amount": discountAmount,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRegistrationNotFound
	}
	return nil
}

// UpdateStatus persists the derived payment status.
func (r *registrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRegistrationNotFound
	}
	return nil
}

// Delete soft-deletes a registration from the database.
func (r *registrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RegistrationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
