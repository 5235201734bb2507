package people

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CreateTeacherInput represents the input for creating a teacher.
type CreateTeacherInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Email      string
	HourlyRate decimal.Decimal
}

// CreateTeacherUseCase creates a new teacher record.
type CreateTeacherUseCase struct {
	teacherRepo adapter.TeacherRepository
}

// NewCreateTeacherUseCase creates a new CreateTeacherUseCase instance.
func NewCreateTeacherUseCase(teacherRepo adapter.TeacherRepository) *CreateTeacherUseCase {
	return &CreateTeacherUseCase{teacherRepo: teacherRepo}
}

// Execute validates the hourly rate and persists the teacher.
func (uc *CreateTeacherUseCase) Execute(ctx context.Context, input CreateTeacherInput) (*entity.Teacher, error) {
	if input.HourlyRate.Sign() < 0 {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidAmount,
			"hourly rate must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	teacher := entity.NewTeacher(input.FirstName, input.LastName, input.Phone, input.Email, input.HourlyRate)
	if err := uc.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}
	return teacher, nil
}

// GetTeacherUseCase reads a single teacher.
type GetTeacherUseCase struct {
	teacherRepo adapter.TeacherRepository
}

// NewGetTeacherUseCase creates a new GetTeacherUseCase instance.
func NewGetTeacherUseCase(teacherRepo adapter.TeacherRepository) *GetTeacherUseCase {
	return &GetTeacherUseCase{teacherRepo: teacherRepo}
}

// Execute returns the teacher or a not-found error.
func (uc *GetTeacherUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	teacher, err := uc.teacherRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeTeacherNotFound,
			"teacher not found",
			err,
		)
	}
	return teacher, nil
}

// ListTeachersUseCase lists all teachers.
type ListTeachersUseCase struct {
	teacherRepo adapter.TeacherRepository
}

// NewListTeachersUseCase creates a new ListTeachersUseCase instance.
func NewListTeachersUseCase(teacherRepo adapter.TeacherRepository) *ListTeachersUseCase {
	return &ListTeachersUseCase{teacherRepo: teacherRepo}
}

// Execute returns all teachers.
func (uc *ListTeachersUseCase) Execute(ctx context.Context) ([]*entity.Teacher, error) {
	teachers, err := uc.teacherRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	return teachers, nil
}

// UpdateTeacherInput represents a partial teacher update. Nil fields are left
// unchanged. Changing the hourly rate only affects dues computed after the
// change; recorded disbursements keep the rate they were created with.
type UpdateTeacherInput struct {
	TeacherID  uuid.UUID
	FirstName  *string
	LastName   *string
	Phone      *string
	Email      *string
	HourlyRate *decimal.Decimal
}

// UpdateTeacherUseCase updates an existing teacher.
type UpdateTeacherUseCase struct {
	teacherRepo adapter.TeacherRepository
}

// NewUpdateTeacherUseCase creates a new UpdateTeacherUseCase instance.
func NewUpdateTeacherUseCase(teacherRepo adapter.TeacherRepository) *UpdateTeacherUseCase {
	return &UpdateTeacherUseCase{teacherRepo: teacherRepo}
}

// Execute applies the provided fields and persists the teacher.
func (uc *UpdateTeacherUseCase) Execute(ctx context.Context, input UpdateTeacherInput) (*entity.Teacher, error) {
	teacher, err := uc.teacherRepo.FindByID(ctx, input.TeacherID)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeTeacherNotFound,
			"teacher not found",
			err,
		)
	}

	if input.FirstName != nil {
		teacher.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		teacher.LastName = *input.LastName
	}
	if input.Phone != nil {
		teacher.Phone = *input.Phone
	}
	if input.Email != nil {
		teacher.Email = *input.Email
	}
	if input.HourlyRate != nil {
		if input.HourlyRate.Sign() < 0 {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeInvalidAmount,
				"hourly rate must not be negative",
				domainerror.ErrInvalidAmount,
			)
		}
		teacher.HourlyRate = *input.HourlyRate
	}

	if err := uc.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, fmt.Errorf("failed to update teacher: %w", err)
	}
	return teacher, nil
}

// DeleteTeacherUseCase soft-deletes a teacher.
type DeleteTeacherUseCase struct {
	teacherRepo adapter.TeacherRepository
}

// NewDeleteTeacherUseCase creates a new DeleteTeacherUseCase instance.
func NewDeleteTeacherUseCase(teacherRepo adapter.TeacherRepository) *DeleteTeacherUseCase {
	return &DeleteTeacherUseCase{teacherRepo: teacherRepo}
}

// Execute removes the teacher.
func (uc *DeleteTeacherUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.teacherRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewRegistrationError(
			domainerror.ErrCodeTeacherNotFound,
			"teacher not found",
			err,
		)
	}
	if err := uc.teacherRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	return nil
}
