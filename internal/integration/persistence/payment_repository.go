package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	"github.com/school-office/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create creates a new payment in the database.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListByRegistration retrieves all payments for a registration, newest first.
func (r *paymentRepository) ListByRegistration(ctx context.Context, registrationID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Order("date DESC, created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// SumPaidByRegistration returns the sum of paid payment amounts for a registration.
func (r *paymentRepository) SumPaidByRegistration(ctx context.Context, registrationID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("SUM(amount)").
		Where("registration_id = ? AND is_paid = ?", registrationID, true).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// SumPaidByRegistrations returns per-registration sums of paid payment
// amounts for the given registration IDs.
func (r *paymentRepository) SumPaidByRegistrations(ctx context.Context, registrationIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	sums := make(map[uuid.UUID]decimal.Decimal, len(registrationIDs))
	if len(registrationIDs) == 0 {
		return sums, nil
	}

	var rows []struct {
		RegistrationID uuid.UUID       `gorm:"column:registration_id"`
		Total          decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("registration_id, SUM(amount) as total").
		Where("registration_id IN ? AND is_paid = ?", registrationIDs, true).
		Group("registration_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		sums[row.RegistrationID] = row.Total
	}
	return sums, nil
}
