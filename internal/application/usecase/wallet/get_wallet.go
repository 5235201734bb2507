package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// DefaultTransactionLimit is the number of transactions returned when the
// caller does not specify one.
const DefaultTransactionLimit = 20

// GetWalletInput represents the input for reading a wallet.
type GetWalletInput struct {
	StudentID uuid.UUID
	Limit     int
}

// GetWalletOutput represents a wallet's balance and recent history.
type GetWalletOutput struct {
	Balance      decimal.Decimal
	Transactions []*entity.WalletTransaction
}

// GetWalletUseCase reads a student's balance and recent transactions.
type GetWalletUseCase struct {
	walletRepo  adapter.WalletRepository
	studentRepo adapter.StudentRepository
}

// NewGetWalletUseCase creates a new GetWalletUseCase instance.
func NewGetWalletUseCase(walletRepo adapter.WalletRepository, studentRepo adapter.StudentRepository) *GetWalletUseCase {
	return &GetWalletUseCase{walletRepo: walletRepo, studentRepo: studentRepo}
}

// Execute returns the current balance and the most recent transactions,
// newest first.
func (uc *GetWalletUseCase) Execute(ctx context.Context, input GetWalletInput) (*GetWalletOutput, error) {
	if _, err := uc.studentRepo.FindByID(ctx, input.StudentID); err != nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletStudentNotFound,
			"student not found",
			err,
		)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	balance, err := uc.walletRepo.Balance(ctx, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	txns, err := uc.walletRepo.ListRecent(ctx, input.StudentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetWalletOutput{Balance: balance, Transactions: txns}, nil
}
