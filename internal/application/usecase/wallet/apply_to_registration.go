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

// ApplyInput represents the input for applying wallet credit to a registration.
type ApplyInput struct {
	StudentID      uuid.UUID
	RegistrationID uuid.UUID
	Amount         decimal.Decimal
	Note           string
}

// ApplyOutput represents the output of a wallet application.
type ApplyOutput struct {
	Balance     decimal.Decimal
	Transaction *entity.WalletTransaction
	Payment     *entity.Payment
}

// ApplyUseCase converts wallet credit into a registration payment. The two
// effects (negative wallet transaction, payment row) are atomic: either both
// are recorded or neither.
type ApplyUseCase struct {
	walletRepo       adapter.WalletRepository
	studentRepo      adapter.StudentRepository
	registrationRepo adapter.RegistrationRepository
	clock            adapter.Clock
	locks            *Locks
}

// NewApplyUseCase creates a new ApplyUseCase instance.
func NewApplyUseCase(
	walletRepo adapter.WalletRepository,
	studentRepo adapter.StudentRepository,
	registrationRepo adapter.RegistrationRepository,
	clock adapter.Clock,
	locks *Locks,
) *ApplyUseCase {
	return &ApplyUseCase{
		walletRepo:       walletRepo,
		studentRepo:      studentRepo,
		registrationRepo: registrationRepo,
		clock:            clock,
		locks:            locks,
	}
}

// Execute validates the request, serializes against other wallet mutations
// for the same student, and performs the atomic check-then-debit.
func (uc *ApplyUseCase) Execute(ctx context.Context, input ApplyInput) (*ApplyOutput, error) {
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"apply amount must be positive",
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

	reg, err := uc.registrationRepo.FindByID(ctx, input.RegistrationID)
	if err != nil || reg.StudentID != input.StudentID {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeWalletRegistrationNotFound,
			"registration not found for student",
			domainerror.ErrWalletRegistrationNotFound,
		)
	}

	unlock := uc.locks.Lock(input.StudentID)
	defer unlock()

	balance, err := uc.walletRepo.Balance(ctx, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	if input.Amount.GreaterThan(balance) {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInsufficientCredit,
			"apply amount exceeds wallet balance",
			domainerror.ErrInsufficientCredit,
		)
	}

	regID := input.RegistrationID
	txn := entity.NewWalletTransaction(input.StudentID, entity.WalletKindApplyToRegistration, input.Amount.Neg(), &regID, input.Note)
	payment := entity.NewPayment(regID, input.Amount, uc.clock.Now(), input.Note)

	if err := uc.walletRepo.Apply(ctx, txn, payment); err != nil {
		return nil, err
	}

	newBalance, err := uc.walletRepo.Balance(ctx, input.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}

	return &ApplyOutput{Balance: newBalance, Transaction: txn, Payment: payment}, nil
}
