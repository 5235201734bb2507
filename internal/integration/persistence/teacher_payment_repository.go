package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
	"github.com/school-office/backend/internal/integration/persistence/model"
)

// teacherPaymentRepository implements the adapter.TeacherPaymentRepository interface.
type teacherPaymentRepository struct {
	db *gorm.DB
}

// NewTeacherPaymentRepository creates a new teacher payment repository instance.
func NewTeacherPaymentRepository(db *gorm.DB) adapter.TeacherPaymentRepository {
	return &teacherPaymentRepository{
		db: db,
	}
}

// Create creates a new teacher payment in the database.
func (r *teacherPaymentRepository) Create(ctx context.Context, payment *entity.TeacherPayment) error {
	paymentModel := model.TeacherPaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListByGroup retrieves the disbursements for a group.
func (r *teacherPaymentRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.TeacherPayment, error) {
	var paymentModels []model.TeacherPaymentModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return teacherPaymentsToEntities(paymentModels), nil
}

// ListByTeacher retrieves the disbursements for a teacher.
func (r *teacherPaymentRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*entity.TeacherPayment, error) {
	var paymentModels []model.TeacherPaymentModel
	result := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return teacherPaymentsToEntities(paymentModels), nil
}

// SumPaidByGroup returns the sum of paid disbursement amounts for a group.
func (r *teacherPaymentRepository) SumPaidByGroup(ctx context.Context, groupID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.TeacherPaymentModel{}).
		Select("SUM(amount)").
		Where("group_id = ? AND paid = ?", groupID, true).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// MarkPaid flags a disbursement as paid on the given date.
func (r *teacherPaymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidDate time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.TeacherPaymentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"paid":       true,
			"paid_date":  paidDate,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTeacherPaymentNotFound
	}
	return nil
}

func teacherPaymentsToEntities(paymentModels []model.TeacherPaymentModel) []*entity.TeacherPayment {
	payments := make([]*entity.TeacherPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments
}
