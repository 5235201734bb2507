package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	// Balance returns the current balance for a student, computed as the sum
	// of all transaction amounts.
	Balance(ctx context.Context, studentID uuid.UUID) (decimal.Decimal, error)

	// ListRecent returns the most recent transactions for a student ordered
	// newest-first, up to limit.
	ListRecent(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.WalletTransaction, error)

	// Append records a single wallet transaction (deposit, refund, adjustment).
	Append(ctx context.Context, txn *entity.WalletTransaction) error

	// Apply atomically records the negative APPLY_TO_REGISTRATION transaction
	// and the corresponding payment row in one unit. The balance is re-checked
	// inside the transaction; ErrInsufficientCredit is returned and nothing is
	// written when the debit would drive the balance negative.
	Apply(ctx context.Context, txn *entity.WalletTransaction, payment *entity.Payment) error
}
