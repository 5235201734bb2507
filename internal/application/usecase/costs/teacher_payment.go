package costs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CreateTeacherPaymentInput represents the input for recording a teacher
// disbursement. When Amount is nil it is computed as hours times the
// teacher's current rate. When Date is nil the disbursement is dated today.
type CreateTeacherPaymentInput struct {
	TeacherID  uuid.UUID
	GroupID    uuid.UUID
	TotalHours decimal.Decimal
	Amount     *decimal.Decimal
	Date       *time.Time
}

// CreateTeacherPaymentUseCase records a disbursement owed to a teacher for a
// group. The rate is snapshotted at creation so later rate edits do not
// rewrite history.
type CreateTeacherPaymentUseCase struct {
	teacherPaymentRepo adapter.TeacherPaymentRepository
	teacherRepo        adapter.TeacherRepository
	groupRepo          adapter.GroupRepository
}

// NewCreateTeacherPaymentUseCase creates a new CreateTeacherPaymentUseCase instance.
func NewCreateTeacherPaymentUseCase(
	teacherPaymentRepo adapter.TeacherPaymentRepository,
	teacherRepo adapter.TeacherRepository,
	groupRepo adapter.GroupRepository,
) *CreateTeacherPaymentUseCase {
	return &CreateTeacherPaymentUseCase{
		teacherPaymentRepo: teacherPaymentRepo,
		teacherRepo:        teacherRepo,
		groupRepo:          groupRepo,
	}
}

// Execute validates references and persists the disbursement.
func (uc *CreateTeacherPaymentUseCase) Execute(ctx context.Context, input CreateTeacherPaymentInput) (*entity.TeacherPayment, error) {
	teacher, err := uc.teacherRepo.FindByID(ctx, input.TeacherID)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeTeacherNotFound,
			"teacher not found",
			err,
		)
	}
	if _, err := uc.groupRepo.FindByID(ctx, input.GroupID); err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}

	amount := input.TotalHours.Mul(teacher.HourlyRate)
	if input.Amount != nil {
		amount = *input.Amount
	}
	if amount.Sign() <= 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"disbursement amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	payment := entity.NewTeacherPayment(input.TeacherID, input.GroupID, input.TotalHours, teacher.HourlyRate, amount)
	if input.Date != nil {
		payment.Date = *input.Date
	}
	if err := uc.teacherPaymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create teacher payment: %w", err)
	}
	return payment, nil
}

// ListTeacherPaymentsInput filters disbursements by teacher or group. Exactly
// one filter must be set.
type ListTeacherPaymentsInput struct {
	TeacherID *uuid.UUID
	GroupID   *uuid.UUID
}

// ListTeacherPaymentsUseCase lists disbursements for a teacher or a group.
type ListTeacherPaymentsUseCase struct {
	teacherPaymentRepo adapter.TeacherPaymentRepository
}

// NewListTeacherPaymentsUseCase creates a new ListTeacherPaymentsUseCase instance.
func NewListTeacherPaymentsUseCase(teacherPaymentRepo adapter.TeacherPaymentRepository) *ListTeacherPaymentsUseCase {
	return &ListTeacherPaymentsUseCase{teacherPaymentRepo: teacherPaymentRepo}
}

// Execute returns the matching disbursements.
func (uc *ListTeacherPaymentsUseCase) Execute(ctx context.Context, input ListTeacherPaymentsInput) ([]*entity.TeacherPayment, error) {
	switch {
	case input.GroupID != nil:
		payments, err := uc.teacherPaymentRepo.ListByGroup(ctx, *input.GroupID)
		if err != nil {
			return nil, fmt.Errorf("failed to list teacher payments: %w", err)
		}
		return payments, nil
	case input.TeacherID != nil:
		payments, err := uc.teacherPaymentRepo.ListByTeacher(ctx, *input.TeacherID)
		if err != nil {
			return nil, fmt.Errorf("failed to list teacher payments: %w", err)
		}
		return payments, nil
	default:
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeTeacherPaymentNotFound,
			"teacher_id or group_id filter is required",
			domainerror.ErrTeacherPaymentNotFound,
		)
	}
}

// MarkTeacherPaymentPaidUseCase flags a disbursement as paid.
type MarkTeacherPaymentPaidUseCase struct {
	teacherPaymentRepo adapter.TeacherPaymentRepository
	clock              adapter.Clock
}

// NewMarkTeacherPaymentPaidUseCase creates a new MarkTeacherPaymentPaidUseCase instance.
func NewMarkTeacherPaymentPaidUseCase(teacherPaymentRepo adapter.TeacherPaymentRepository, clock adapter.Clock) *MarkTeacherPaymentPaidUseCase {
	return &MarkTeacherPaymentPaidUseCase{teacherPaymentRepo: teacherPaymentRepo, clock: clock}
}

// Execute marks the disbursement paid, on the given date or today.
func (uc *MarkTeacherPaymentPaidUseCase) Execute(ctx context.Context, id uuid.UUID, paidDate *time.Time) error {
	date := uc.clock.Now()
	if paidDate != nil {
		date = *paidDate
	}
	if err := uc.teacherPaymentRepo.MarkPaid(ctx, id, date); err != nil {
		return err
	}
	return nil
}
