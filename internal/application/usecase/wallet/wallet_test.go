package wallet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

type walletFixture struct {
	walletRepo  *fakeWalletRepo
	studentRepo *fakeStudentRepo
	regRepo     *fakeRegistrationRepo
	deposit     *DepositUseCase
	apply       *ApplyUseCase
	get         *GetWalletUseCase
	student     *entity.Student
	reg         *entity.Registration
}

func newWalletFixture(t *testing.T) *walletFixture {
	t.Helper()

	walletRepo := &fakeWalletRepo{}
	studentRepo := &fakeStudentRepo{students: make(map[uuid.UUID]*entity.Student)}
	regRepo := &fakeRegistrationRepo{registrations: make(map[uuid.UUID]*entity.Registration)}
	clock := &fakeClock{now: time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)}
	locks := NewLocks()

	student := entity.NewStudent("Amina", "Berrada", "", "", nil)
	studentRepo.students[student.ID] = student

	reg := entity.NewRegistration(student.ID, uuid.New(), decimal.RequireFromString("800"), decimal.Zero, decimal.Zero)
	regRepo.registrations[reg.ID] = reg

	return &walletFixture{
		walletRepo:  walletRepo,
		studentRepo: studentRepo,
		regRepo:     regRepo,
		deposit:     NewDepositUseCase(walletRepo, studentRepo, locks),
		apply:       NewApplyUseCase(walletRepo, studentRepo, regRepo, clock, locks),
		get:         NewGetWalletUseCase(walletRepo, studentRepo),
		student:     student,
		reg:         reg,
	}
}

func TestDepositValidation(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	t.Run("zero amount is rejected", func(t *testing.T) {
		_, err := f.deposit.Execute(ctx, DepositInput{StudentID: f.student.ID, Amount: decimal.Zero})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := f.deposit.Execute(ctx, DepositInput{StudentID: f.student.ID, Amount: decimal.RequireFromString("-5")})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("unknown student is rejected", func(t *testing.T) {
		_, err := f.deposit.Execute(ctx, DepositInput{StudentID: uuid.New(), Amount: decimal.NewFromInt(10)})
		if !errors.Is(err, domainerror.ErrStudentNotFound) {
			t.Errorf("expected ErrStudentNotFound, got %v", err)
		}
	})

	t.Run("valid deposit increases balance", func(t *testing.T) {
		out, err := f.deposit.Execute(ctx, DepositInput{StudentID: f.student.ID, Amount: decimal.NewFromInt(150), Note: "initial"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Balance.Equal(decimal.NewFromInt(150)) {
			t.Errorf("balance = %s, want 150", out.Balance)
		}
		if out.Transaction.Kind != entity.WalletKindDeposit {
			t.Errorf("kind = %s, want DEPOSIT", out.Transaction.Kind)
		}
	})
}

func TestApplyExactBalanceThenInsufficient(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	if _, err := f.deposit.Execute(ctx, DepositInput{StudentID: f.student.ID, Amount: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	out, err := f.apply.Execute(ctx, ApplyInput{
		StudentID:      f.student.ID,
		RegistrationID: f.reg.ID,
		Amount:         decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !out.Balance.IsZero() {
		t.Errorf("balance after exact apply = %s, want 0", out.Balance)
	}

	_, err = f.apply.Execute(ctx, ApplyInput{
		StudentID:      f.student.ID,
		RegistrationID: f.reg.ID,
		Amount:         decimal.NewFromInt(1),
	})
	if !errors.Is(err, domainerror.ErrInsufficientCredit) {
		t.Errorf("expected ErrInsufficientCredit, got %v", err)
	}
}

func TestApplyRecordsBothEffects(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	if _, err := f.deposit.Execute(ctx, DepositInput{StudentID: f.student.ID, Amount: decimal.NewFromInt(500)}); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	out, err := f.apply.Execute(ctx, ApplyInput{
		StudentID:      f.student.ID,
		RegistrationID: f.reg.ID,
		Amount:         decimal.NewFromInt(300),
		Note:           "first installment",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if !out.Transaction.Amount.Equal(decimal.NewFromInt(-300)) {
		t.Errorf("wallet transaction amount = %s, want -300", out.Transaction.Amount)
	}
	if out.Transaction.RegistrationID == nil || *out.Transaction.RegistrationID != f.reg.ID {
		t.Error("wallet transaction must link the registration")
	}
	if len(f.walletRepo.payments) != 1 {
		t.Fatalf("payments recorded = %d, want 1", len(f.walletRepo.payments))
	}
	payment := f.walletRepo.payments[0]
	if !payment.Amount.Equal(decimal.NewFromInt(300)) || payment.RegistrationID != f.reg.ID || !payment.IsPaid {
		t.Errorf("unexpected payment row: %+v", payment)
	}

	// Balance equals the exact sum of signed transaction amounts.
	if !out.Balance.Equal(decimal.NewFromInt(200)) {
		t.Errorf("balance = %s, want 200", out.Balance)
	}
}

func TestApplyValidation(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := f.apply.Execute(ctx, ApplyInput{StudentID: f.student.ID, RegistrationID: f.reg.ID, Amount: decimal.Zero})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("unknown registration", func(t *testing.T) {
		_, err := f.apply.Execute(ctx, ApplyInput{StudentID: f.student.ID, RegistrationID: uuid.New(), Amount: decimal.NewFromInt(1)})
		if !errors.Is(err, domainerror.ErrWalletRegistrationNotFound) {
			t.Errorf("expected ErrWalletRegistrationNotFound, got %v", err)
		}
	})

	t.Run("registration of another student", func(t *testing.T) {
		other := entity.NewRegistration(uuid.New(), uuid.New(), decimal.NewFromInt(100), decimal.Zero, decimal.Zero)
		f.regRepo.registrations[other.ID] = other

		_, err := f.apply.Execute(ctx, ApplyInput{StudentID: f.student.ID, RegistrationID: other.ID, Amount: decimal.NewFromInt(1)})
		if !errors.Is(err, domainerror.ErrWalletRegistrationNotFound) {
			t.Errorf("expected ErrWalletRegistrationNotFound, got %v", err)
		}
	})
}

// Two applies that are individually under the balance but jointly over it must
// never both succeed.
func TestConcurrentAppliesNeverOverdraw(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	if _, err := f.deposit.Execute(ctx, DepositInput{StudentID: f.student.ID, Amount: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	const workers = 10
	applyAmount := decimal.NewFromInt(30)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.apply.Execute(ctx, ApplyInput{
				StudentID:      f.student.ID,
				RegistrationID: f.reg.ID,
				Amount:         applyAmount,
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else if !errors.Is(err, domainerror.ErrInsufficientCredit) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 3 {
		t.Errorf("succeeded applies = %d, want 3", succeeded)
	}

	balance, err := f.walletRepo.Balance(ctx, f.student.ID)
	if err != nil {
		t.Fatalf("balance read failed: %v", err)
	}
	if balance.Sign() < 0 {
		t.Errorf("balance went negative: %s", balance)
	}
	if !balance.Equal(decimal.NewFromInt(10)) {
		t.Errorf("balance = %s, want 10", balance)
	}
}

func TestGetWallet(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if _, err := f.deposit.Execute(ctx, DepositInput{StudentID: f.student.ID, Amount: decimal.NewFromInt(int64(i))}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}
	}

	out, err := f.get.Execute(ctx, GetWalletInput{StudentID: f.student.ID, Limit: 3})
	if err != nil {
		t.Fatalf("get wallet failed: %v", err)
	}
	if !out.Balance.Equal(decimal.NewFromInt(15)) {
		t.Errorf("balance = %s, want 15", out.Balance)
	}
	if len(out.Transactions) != 3 {
		t.Fatalf("transactions = %d, want 3", len(out.Transactions))
	}
	// Newest first: amounts 5, 4, 3.
	if !out.Transactions[0].Amount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("first transaction amount = %s, want 5", out.Transactions[0].Amount)
	}
}
