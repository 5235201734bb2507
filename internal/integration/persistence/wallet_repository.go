package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
	"github.com/school-office/backend/internal/integration/persistence/model"
)

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// Balance returns the current balance for a student, computed as the sum of
// all transaction amounts.
func (r *walletRepository) Balance(ctx context.Context, studentID uuid.UUID) (decimal.Decimal, error) {
	return sumWalletBalance(r.db.WithContext(ctx), studentID)
}

// ListRecent returns the most recent transactions for a student ordered
// newest-first, up to limit.
func (r *walletRepository) ListRecent(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.WalletTransaction, error) {
	var txnModels []model.WalletTransactionModel
	result := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txnModels)
	if result.Error != nil {
		return nil, result.Error
	}

	txns := make([]*entity.WalletTransaction, len(txnModels))
	for i, tm := range txnModels {
		txns[i] = tm.ToEntity()
	}
	return txns, nil
}

// Append records a single wallet transaction.
func (r *walletRepository) Append(ctx context.Context, txn *entity.WalletTransaction) error {
	txnModel := model.WalletTransactionFromEntity(txn)
	result := r.db.WithContext(ctx).Create(txnModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Apply atomically records the negative APPLY_TO_REGISTRATION transaction and
// the corresponding payment row. The balance is re-checked inside the
// database transaction so a concurrent debit that slipped past the use-case
// lock still cannot drive the balance negative.
func (r *walletRepository) Apply(ctx context.Context, txn *entity.WalletTransaction, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := sumWalletBalance(tx, txn.StudentID)
		if err != nil {
			return err
		}

		debit := txn.Amount.Neg()
		if debit.GreaterThan(balance) {
			return domainerror.ErrInsufficientCredit
		}

		if err := tx.Create(model.WalletTransactionFromEntity(txn)).Error; err != nil {
			return err
		}
		if err := tx.Create(model.PaymentFromEntity(payment)).Error; err != nil {
			return err
		}
		return nil
	})
}

// sumWalletBalance sums a student's wallet ledger inside the given handle.
func sumWalletBalance(tx *gorm.DB, studentID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := tx.
		Model(&model.WalletTransactionModel{}).
		Select("SUM(amount)").
		Where("student_id = ?", studentID).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
