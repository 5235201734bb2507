package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// fakeWalletRepo mirrors the real repository's contract, including the atomic
// balance re-check inside Apply.
type fakeWalletRepo struct {
	mu       sync.Mutex
	txns     []*entity.WalletTransaction
	payments []*entity.Payment
	failNext error
}

func (r *fakeWalletRepo) balanceLocked(studentID uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range r.txns {
		if txn.StudentID == studentID {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum
}

func (r *fakeWalletRepo) Balance(_ context.Context, studentID uuid.UUID) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balanceLocked(studentID), nil
}

func (r *fakeWalletRepo) ListRecent(_ context.Context, studentID uuid.UUID, limit int) ([]*entity.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.WalletTransaction
	for i := len(r.txns) - 1; i >= 0 && len(out) < limit; i-- {
		if r.txns[i].StudentID == studentID {
			out = append(out, r.txns[i])
		}
	}
	return out, nil
}

func (r *fakeWalletRepo) Append(_ context.Context, txn *entity.WalletTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.txns = append(r.txns, txn)
	return nil
}

func (r *fakeWalletRepo) Apply(_ context.Context, txn *entity.WalletTransaction, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	if r.balanceLocked(txn.StudentID).Add(txn.Amount).Sign() < 0 {
		return domainerror.ErrInsufficientCredit
	}
	r.txns = append(r.txns, txn)
	r.payments = append(r.payments, payment)
	return nil
}

type fakeStudentRepo struct {
	students map[uuid.UUID]*entity.Student
}

func (r *fakeStudentRepo) Create(_ context.Context, s *entity.Student) error {
	r.students[s.ID] = s
	return nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, domainerror.ErrStudentNotFound
	}
	return s, nil
}

func (r *fakeStudentRepo) List(context.Context) ([]*entity.Student, error) { return nil, nil }
func (r *fakeStudentRepo) Update(context.Context, *entity.Student) error   { return nil }
func (r *fakeStudentRepo) Delete(context.Context, uuid.UUID) error         { return nil }

type fakeRegistrationRepo struct {
	registrations map[uuid.UUID]*entity.Registration
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg *entity.Registration) error {
	r.registrations[reg.ID] = reg
	return nil
}

func (r *fakeRegistrationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Registration, error) {
	reg, ok := r.registrations[id]
	if !ok {
		return nil, domainerror.ErrRegistrationNotFound
	}
	return reg, nil
}

func (r *fakeRegistrationRepo) FindByStudentAndGroup(context.Context, uuid.UUID, uuid.UUID) (*entity.Registration, error) {
	return nil, domainerror.ErrRegistrationNotFound
}

func (r *fakeRegistrationRepo) FindByGroup(context.Context, uuid.UUID) ([]*entity.Registration, error) {
	return nil, nil
}

func (r *fakeRegistrationRepo) FindByStudent(context.Context, uuid.UUID) ([]*entity.Registration, error) {
	return nil, nil
}

func (r *fakeRegistrationRepo) ExistsByStudentAndGroup(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeRegistrationRepo) UpdateDiscount(context.Context, uuid.UUID, decimal.Decimal) error {
	return nil
}

func (r *fakeRegistrationRepo) UpdateStatus(context.Context, uuid.UUID, entity.RegistrationStatus) error {
	return nil
}

func (r *fakeRegistrationRepo) Delete(context.Context, uuid.UUID) error { return nil }
