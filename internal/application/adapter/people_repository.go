package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// StudentRepository defines the interface for student persistence operations.
type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	List(ctx context.Context) ([]*entity.Student, error)
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeacherRepository defines the interface for teacher persistence operations.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *entity.Teacher) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error)
	List(ctx context.Context) ([]*entity.Teacher, error)
	Update(ctx context.Context, teacher *entity.Teacher) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GroupRepository defines the interface for group persistence operations.
type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	List(ctx context.Context) ([]*entity.Group, error)

	// Count returns the number of groups, used for the flat even split of
	// general costs.
	Count(ctx context.Context) (int64, error)

	Update(ctx context.Context, group *entity.Group) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeacherPaymentRepository defines the interface for teacher payment persistence operations.
type TeacherPaymentRepository interface {
	Create(ctx context.Context, payment *entity.TeacherPayment) error
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.TeacherPayment, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*entity.TeacherPayment, error)

	// SumPaidByGroup returns the sum of paid disbursement amounts for a group.
	SumPaidByGroup(ctx context.Context, groupID uuid.UUID) (decimal.Decimal, error)

	// MarkPaid flags a disbursement as paid on the given date.
	MarkPaid(ctx context.Context, id uuid.UUID, paidDate time.Time) error
}
