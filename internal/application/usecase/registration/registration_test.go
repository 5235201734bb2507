package registration

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

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
func (r *fakeRegistrationRepo) FindByStudentAndGroup(_ context.Context, studentID, groupID uuid.UUID) (*entity.Registration, error) {
	for _, reg := range r.registrations {
		if reg.StudentID == studentID && reg.GroupID == groupID {
			return reg, nil
		}
	}
	return nil, domainerror.ErrRegistrationNotFound
}
func (r *fakeRegistrationRepo) FindByGroup(_ context.Context, groupID uuid.UUID) ([]*entity.Registration, error) {
	var out []*entity.Registration
	for _, reg := range r.registrations {
		if reg.GroupID == groupID {
			out = append(out, reg)
		}
	}
	return out, nil
}
func (r *fakeRegistrationRepo) FindByStudent(_ context.Context, studentID uuid.UUID) ([]*entity.Registration, error) {
	var out []*entity.Registration
	for _, reg := range r.registrations {
		if reg.StudentID == studentID {
			out = append(out, reg)
		}
	}
	return out, nil
}
func (r *fakeRegistrationRepo) ExistsByStudentAndGroup(_ context.Context, studentID, groupID uuid.UUID) (bool, error) {
	for _, reg := range r.registrations {
		if reg.StudentID == studentID && reg.GroupID == groupID {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeRegistrationRepo) UpdateDiscount(_ context.Context, id uuid.UUID, amount decimal.Decimal) error {
	reg, ok := r.registrations[id]
	if !ok {
		return domainerror.ErrRegistrationNotFound
	}
	reg.DiscountAmount = amount
	return nil
}
func (r *fakeRegistrationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RegistrationStatus) error {
	reg, ok := r.registrations[id]
	if !ok {
		return domainerror.ErrRegistrationNotFound
	}
	reg.Status = status
	return nil
}
func (r *fakeRegistrationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.registrations, id)
	return nil
}

func setup() (*fakeRegistrationRepo, *fakeStudentRepo, *fakeGroupRepo, *entity.Student, *entity.Group) {
	regRepo := &fakeRegistrationRepo{registrations: map[uuid.UUID]*entity.Registration{}}
	studentRepo := &fakeStudentRepo{students: map[uuid.UUID]*entity.Student{}}
	groupRepo := &fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{}}

	student := entity.NewStudent("Sara", "Amrani", "", "", nil)
	studentRepo.students[student.ID] = student
	group := entity.NewGroup("B2 Evening", "B2", decimal.NewFromInt(4), decimal.NewFromInt(40), decimal.NewFromInt(900), nil)
	groupRepo.groups[group.ID] = group

	return regRepo, studentRepo, groupRepo, student, group
}

func TestCreateRegistration(t *testing.T) {
	regRepo, studentRepo, groupRepo, student, group := setup()
	uc := NewCreateUseCase(regRepo, studentRepo, groupRepo)

	reg, err := uc.Execute(context.Background(), CreateInput{
		StudentID:   student.ID,
		GroupID:     group.ID,
		AgreedPrice: decimal.NewFromInt(800),
		DepositPct:  decimal.NewFromInt(30),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if reg.Status != entity.RegistrationStatusDue {
		t.Errorf("status = %s, want DUE", reg.Status)
	}

	// Same student, same group: rejected.
	_, err = uc.Execute(context.Background(), CreateInput{
		StudentID:   student.ID,
		GroupID:     group.ID,
		AgreedPrice: decimal.NewFromInt(800),
	})
	if !errors.Is(err, domainerror.ErrRegistrationExists) {
		t.Errorf("duplicate create error = %v, want ErrRegistrationExists", err)
	}
}

func TestCreateRegistrationClampsDiscount(t *testing.T) {
	regRepo, studentRepo, groupRepo, student, group := setup()
	uc := NewCreateUseCase(regRepo, studentRepo, groupRepo)

	reg, err := uc.Execute(context.Background(), CreateInput{
		StudentID:      student.ID,
		GroupID:        group.ID,
		AgreedPrice:    decimal.NewFromInt(500),
		DiscountAmount: decimal.NewFromInt(700),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !reg.DiscountAmount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("discount = %s, want clamped to 500", reg.DiscountAmount)
	}

	_, err = uc.Execute(context.Background(), CreateInput{
		StudentID:      student.ID,
		GroupID:        uuid.New(),
		AgreedPrice:    decimal.NewFromInt(500),
		DiscountAmount: decimal.NewFromInt(-1),
	})
	if err == nil {
		t.Fatal("expected error for unknown group")
	}
}

func TestCreateRegistrationRejectsNegativePrice(t *testing.T) {
	regRepo, studentRepo, groupRepo, student, group := setup()
	uc := NewCreateUseCase(regRepo, studentRepo, groupRepo)

	_, err := uc.Execute(context.Background(), CreateInput{
		StudentID:   student.ID,
		GroupID:     group.ID,
		AgreedPrice: decimal.NewFromInt(-100),
	})
	if !errors.Is(err, domainerror.ErrInvalidPrice) {
		t.Fatalf("error = %v, want ErrInvalidPrice", err)
	}
	var regErr *domainerror.RegistrationError
	if !errors.As(err, &regErr) || regErr.Code != domainerror.ErrCodeInvalidPrice {
		t.Errorf("error = %v, want RegistrationError with ErrCodeInvalidPrice", err)
	}
	if len(regRepo.registrations) != 0 {
		t.Errorf("got %d registrations, want none", len(regRepo.registrations))
	}
}

func TestListRegistrationsRequiresFilter(t *testing.T) {
	regRepo, _, _, student, group := setup()
	reg := entity.NewRegistration(student.ID, group.ID, decimal.NewFromInt(800), decimal.Zero, decimal.Zero)
	regRepo.registrations[reg.ID] = reg

	uc := NewListUseCase(regRepo)

	if _, err := uc.Execute(context.Background(), ListInput{}); err == nil {
		t.Error("expected error when no filter is set")
	}

	regs, err := uc.Execute(context.Background(), ListInput{StudentID: &reg.StudentID, GroupID: &reg.GroupID})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(regs) != 1 {
		t.Errorf("got %d registrations, want 1", len(regs))
	}
}

func TestDeleteRegistration(t *testing.T) {
	regRepo, _, _, student, group := setup()
	reg := entity.NewRegistration(student.ID, group.ID, decimal.NewFromInt(800), decimal.Zero, decimal.Zero)
	regRepo.registrations[reg.ID] = reg

	uc := NewDeleteUseCase(regRepo)
	if err := uc.Execute(context.Background(), reg.ID); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := uc.Execute(context.Background(), reg.ID); !errors.Is(err, domainerror.ErrRegistrationNotFound) {
		t.Errorf("second delete error = %v, want ErrRegistrationNotFound", err)
	}
}
