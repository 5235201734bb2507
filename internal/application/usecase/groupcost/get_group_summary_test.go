package groupcost

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeGroupRepo struct {
	groups map[uuid.UUID]*entity.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, g *entity.Group) error { r.groups[g.ID] = g; return nil }
func (r *fakeGroupRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, domainerror.ErrGroupNotFound
	}
	return g, nil
}
func (r *fakeGroupRepo) List(context.Context) ([]*entity.Group, error) { return nil, nil }
func (r *fakeGroupRepo) Count(context.Context) (int64, error)          { return int64(len(r.groups)), nil }
func (r *fakeGroupRepo) Update(context.Context, *entity.Group) error   { return nil }
func (r *fakeGroupRepo) Delete(context.Context, uuid.UUID) error       { return nil }

type fakeTeacherRepo struct {
	teachers map[uuid.UUID]*entity.Teacher
}

func (r *fakeTeacherRepo) Create(_ context.Context, t *entity.Teacher) error {
	r.teachers[t.ID] = t
	return nil
}
func (r *fakeTeacherRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Teacher, error) {
	t, ok := r.teachers[id]
	if !ok {
		return nil, domainerror.ErrTeacherNotFound
	}
	return t, nil
}
func (r *fakeTeacherRepo) List(context.Context) ([]*entity.Teacher, error) { return nil, nil }
func (r *fakeTeacherRepo) Update(context.Context, *entity.Teacher) error   { return nil }
func (r *fakeTeacherRepo) Delete(context.Context, uuid.UUID) error         { return nil }

type fakeRegistrationRepo struct {
	byGroup map[uuid.UUID][]*entity.Registration
}

func (r *fakeRegistrationRepo) Create(context.Context, *entity.Registration) error { return nil }
func (r *fakeRegistrationRepo) FindByID(context.Context, uuid.UUID) (*entity.Registration, error) {
	return nil, domainerror.ErrRegistrationNotFound
}
func (r *fakeRegistrationRepo) FindByStudentAndGroup(context.Context, uuid.UUID, uuid.UUID) (*entity.Registration, error) {
	return nil, domainerror.ErrRegistrationNotFound
}
func (r *fakeRegistrationRepo) FindByGroup(_ context.Context, groupID uuid.UUID) ([]*entity.Registration, error) {
	return r.byGroup[groupID], nil
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

type fakePaymentRepo struct {
	paidByReg map[uuid.UUID]decimal.Decimal
}

func (r *fakePaymentRepo) Create(context.Context, *entity.Payment) error { return nil }
func (r *fakePaymentRepo) ListByRegistration(context.Context, uuid.UUID) ([]*entity.Payment, error) {
	return nil, nil
}
func (r *fakePaymentRepo) SumPaidByRegistration(_ context.Context, id uuid.UUID) (decimal.Decimal, error) {
	return r.paidByReg[id], nil
}
func (r *fakePaymentRepo) SumPaidByRegistrations(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	out := make(map[uuid.UUID]decimal.Decimal, len(ids))
	for _, id := range ids {
		out[id] = r.paidByReg[id]
	}
	return out, nil
}

type fakeCostRepo struct {
	byGroup map[uuid.UUID][]*entity.Cost
	general []*entity.Cost
}

func (r *fakeCostRepo) Create(context.Context, *entity.Cost) error { return nil }
func (r *fakeCostRepo) FindByID(context.Context, uuid.UUID) (*entity.Cost, error) {
	return nil, domainerror.ErrCostNotFound
}
func (r *fakeCostRepo) FindLatestByTemplate(context.Context, uuid.UUID) (*entity.Cost, error) {
	return nil, nil
}
func (r *fakeCostRepo) List(context.Context) ([]*entity.Cost, error) { return nil, nil }
func (r *fakeCostRepo) ListByGroup(_ context.Context, groupID uuid.UUID) ([]*entity.Cost, error) {
	return r.byGroup[groupID], nil
}
func (r *fakeCostRepo) ListGeneral(context.Context) ([]*entity.Cost, error) { return r.general, nil }
func (r *fakeCostRepo) Update(context.Context, *entity.Cost) error          { return nil }
func (r *fakeCostRepo) Delete(context.Context, uuid.UUID) error             { return nil }

type fakeTeacherPaymentRepo struct {
	paidByGroup map[uuid.UUID]decimal.Decimal
}

func (r *fakeTeacherPaymentRepo) Create(context.Context, *entity.TeacherPayment) error { return nil }
func (r *fakeTeacherPaymentRepo) ListByGroup(context.Context, uuid.UUID) ([]*entity.TeacherPayment, error) {
	return nil, nil
}
func (r *fakeTeacherPaymentRepo) ListByTeacher(context.Context, uuid.UUID) ([]*entity.TeacherPayment, error) {
	return nil, nil
}
func (r *fakeTeacherPaymentRepo) SumPaidByGroup(_ context.Context, groupID uuid.UUID) (decimal.Decimal, error) {
	return r.paidByGroup[groupID], nil
}
func (r *fakeTeacherPaymentRepo) MarkPaid(context.Context, uuid.UUID, time.Time) error { return nil }

func cost(amount string, paid bool, groupID *uuid.UUID) *entity.Cost {
	c := entity.NewCost("rent", dec(amount), entity.CostTypeFixed, entity.CostFrequencyMonthly,
		time.Now(), time.Now(), "", nil, groupID)
	c.Paid = paid
	return c
}

func TestGetGroupSummary(t *testing.T) {
	teacher := entity.NewTeacher("Hassan", "Idrissi", "", "", dec("100"))
	teacherID := teacher.ID

	group := entity.NewGroup("B2 Evening", "B2", dec("4"), dec("40"), dec("900"), &teacherID)
	otherGroup := entity.NewGroup("A1 Morning", "A1", dec("4"), dec("40"), dec("700"), nil)

	reg1 := entity.NewRegistration(uuid.New(), group.ID, dec("800"), dec("50"), decimal.Zero)
	reg2 := entity.NewRegistration(uuid.New(), group.ID, dec("1000"), decimal.Zero, decimal.Zero)

	groupRepo := &fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{group.ID: group, otherGroup.ID: otherGroup}}
	teacherRepo := &fakeTeacherRepo{teachers: map[uuid.UUID]*entity.Teacher{teacher.ID: teacher}}
	regRepo := &fakeRegistrationRepo{byGroup: map[uuid.UUID][]*entity.Registration{group.ID: {reg1, reg2}}}
	paymentRepo := &fakePaymentRepo{paidByReg: map[uuid.UUID]decimal.Decimal{
		reg1.ID: dec("300"),
		reg2.ID: dec("1000"),
	}}
	costRepo := &fakeCostRepo{
		byGroup: map[uuid.UUID][]*entity.Cost{group.ID: {
			cost("300", true, &group.ID),
			cost("200", false, &group.ID),
		}},
		general: []*entity.Cost{
			cost("1000", true, nil),
			cost("400", false, nil),
		},
	}
	tpRepo := &fakeTeacherPaymentRepo{paidByGroup: map[uuid.UUID]decimal.Decimal{group.ID: dec("2500")}}

	uc := NewGetSummaryUseCase(groupRepo, teacherRepo, regRepo, paymentRepo, costRepo, tpRepo)

	got, err := uc.Execute(context.Background(), GetSummaryInput{GroupID: group.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"teacher due", got.TeacherAmountDue, "4000"},
		{"teacher paid", got.TeacherPaid, "2500"},
		{"teacher unpaid", got.TeacherUnpaid, "1500"},
		{"group total cost", got.GroupTotalCost, "500"},
		{"group paid cost", got.GroupPaidCost, "300"},
		{"group unpaid cost", got.GroupUnpaidCost, "200"},
		// 2 groups: even split of 1000 paid / 400 unpaid.
		{"general paid share", got.GeneralPaid, "500"},
		{"general unpaid share", got.GeneralUnpaid, "200"},
		{"revenue collected", got.RevenueCollected, "1300"},
		{"revenue due", got.RevenueDue, "1750"},
		{"revenue outstanding", got.RevenueOutstanding, "450"},
		// Cash basis: 1300 - (2500 + 300 + 500).
		{"profit", got.Profit, "-2000"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if got.StudentCount != 2 {
		t.Errorf("student count = %d, want 2", got.StudentCount)
	}
}

func TestGetGroupSummaryWithoutTeacher(t *testing.T) {
	group := entity.NewGroup("A1 Morning", "A1", dec("4"), dec("40"), dec("700"), nil)

	uc := NewGetSummaryUseCase(
		&fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{group.ID: group}},
		&fakeTeacherRepo{teachers: map[uuid.UUID]*entity.Teacher{}},
		&fakeRegistrationRepo{byGroup: map[uuid.UUID][]*entity.Registration{}},
		&fakePaymentRepo{paidByReg: map[uuid.UUID]decimal.Decimal{}},
		&fakeCostRepo{byGroup: map[uuid.UUID][]*entity.Cost{}},
		&fakeTeacherPaymentRepo{paidByGroup: map[uuid.UUID]decimal.Decimal{}},
	)

	got, err := uc.Execute(context.Background(), GetSummaryInput{GroupID: group.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.TeacherAmountDue.IsZero() || !got.TeacherUnpaid.IsZero() {
		t.Error("expected zero teacher figures for a group without teacher")
	}
}

func TestGetGroupSummaryGroupNotFound(t *testing.T) {
	uc := NewGetSummaryUseCase(
		&fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{}},
		&fakeTeacherRepo{teachers: map[uuid.UUID]*entity.Teacher{}},
		&fakeRegistrationRepo{byGroup: map[uuid.UUID][]*entity.Registration{}},
		&fakePaymentRepo{paidByReg: map[uuid.UUID]decimal.Decimal{}},
		&fakeCostRepo{byGroup: map[uuid.UUID][]*entity.Cost{}},
		&fakeTeacherPaymentRepo{paidByGroup: map[uuid.UUID]decimal.Decimal{}},
	)

	_, err := uc.Execute(context.Background(), GetSummaryInput{GroupID: uuid.New()})
	if !errors.Is(err, domainerror.ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}
