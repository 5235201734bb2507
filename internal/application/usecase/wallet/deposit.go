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

// DepositInput represents the input for a wallet deposit.
type DepositInput struct {
	StudentID uuid.UUID
	Amount    decimal.Decimal
	Note      string
}

// DepositOutput represents the output of a wallet deposit.
type DepositOutput struct {
	Balance     decimal.Decimal
	Transaction *entity.WalletTransaction
}

// DepositUseCase appends a DEPOSIT transaction to a student's wallet.
type DepositUseCase struct {
	walletRepo  adapter.WalletRepository
	studentRepo adapter.StudentRepository
	locks       *Locks
}

// NewDepositUseCase creates a new DepositUseCase instance.
func NewDepositUseCase(
	walletRepo adapter.WalletRepository,
	studentRepo adapter.StudentRepository,
	locks *Locks,
) *DepositUseCase {
	return &DepositUseCase{
		walletRepo:  walletRepo,
		studentRepo: studentRepo,
		locks:       locks,
	}
}

// Execute validates and records the deposit. Deposits fail closed: a
// non-positive amount is rejected, never silently defaulted.
func (uc *DepositUseCase) Execute(ctx context.Context, input DepositInput) (*DepositOutput, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"deposit amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	if _, err := uc.studentRepo.FindByID(ctx, input.StudentID); err != nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletStudentNotFound,
			"student not found",
			err,
		)
	}

	unlock := uc.locks.Lock(input.StudentID)
	defer unlock()

	txn := entity.NewWalletTransaction(input.StudentID, entity.WalletKindDeposit, input.Amount, nil, input.Note)
	if err := uc.walletRepo.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	balance, err := uc.walletRepo.Balance(ctx, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	return &DepositOutput{Balance: balance, Transaction: txn}, nil
}
