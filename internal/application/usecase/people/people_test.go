package people

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
func (r *fakeStudentRepo) Update(_ context.Context, s *entity.Student) error {
	r.students[s.ID] = s
	return nil
}
func (r *fakeStudentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.students, id)
	return nil
}

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
func (r *fakeTeacherRepo) Update(_ context.Context, t *entity.Teacher) error {
	r.teachers[t.ID] = t
	return nil
}
func (r *fakeTeacherRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.teachers, id)
	return nil
}

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

func TestCreateStudentValidatesGroup(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: map[uuid.UUID]*entity.Student{}}
	groupRepo := &fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{}}
	uc := NewCreateStudentUseCase(studentRepo, groupRepo)

	unknown := uuid.New()
	_, err := uc.Execute(context.Background(), CreateStudentInput{FirstName: "Sara", GroupID: &unknown})
	if !errors.Is(err, domainerror.ErrGroupNotFound) {
		t.Fatalf("error = %v, want ErrGroupNotFound", err)
	}

	student, err := uc.Execute(context.Background(), CreateStudentInput{FirstName: "Sara", LastName: "Amrani"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if student.FullName() != "Sara Amrani" {
		t.Errorf("FullName = %q", student.FullName())
	}
}

func TestUpdateStudentPartialFields(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: map[uuid.UUID]*entity.Student{}}
	groupRepo := &fakeGroupRepo{groups: map[uuid.UUID]*entity.Group{}}

	student := entity.NewStudent("Sara", "Amrani", "0600000000", "sara@example.com", nil)
	studentRepo.students[student.ID] = student

	phone := "0611111111"
	uc := NewUpdateStudentUseCase(studentRepo, groupRepo)
	updated, err := uc.Execute(context.Background(), UpdateStudentInput{
		StudentID: student.ID,
		Phone:     &phone,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if updated.Phone != phone {
		t.Errorf("phone = %q, want %q", updated.Phone, phone)
	}
	if updated.FirstName != "Sara" || updated.Email != "sara@example.com" {
		t.Error("unset fields must be left unchanged")
	}
}

func TestUpdateTeacherRejectsNegativeRate(t *testing.T) {
	teacherRepo := &fakeTeacherRepo{teachers: map[uuid.UUID]*entity.Teacher{}}
	teacher := entity.NewTeacher("Omar", "Bennis", "", "", decimal.NewFromInt(150))
	teacherRepo.teachers[teacher.ID] = teacher

	negative := decimal.NewFromInt(-10)
	uc := NewUpdateTeacherUseCase(teacherRepo)
	_, err := uc.Execute(context.Background(), UpdateTeacherInput{
		TeacherID:  teacher.ID,
		HourlyRate: &negative,
	})
	if !errors.Is(err, domainerror.ErrInvalidAmount) {
		t.Errorf("error = %v, want ErrInvalidAmount", err)
	}
	if !teacher.HourlyRate.Equal(decimal.NewFromInt(150)) {
		t.Errorf("rate mutated to %s on failed update", teacher.HourlyRate)
	}
}

func TestDeleteStudent(t *testing.T) {
	studentRepo := &fakeStudentRepo{students: map[uuid.UUID]*entity.Student{}}
	student := entity.NewStudent("Sara", "Amrani", "", "", nil)
	studentRepo.students[student.ID] = student

	uc := NewDeleteStudentUseCase(studentRepo)
	if err := uc.Execute(context.Background(), student.ID); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := uc.Execute(context.Background(), student.ID); !errors.Is(err, domainerror.ErrStudentNotFound) {
		t.Errorf("second delete error = %v, want ErrStudentNotFound", err)
	}
}
