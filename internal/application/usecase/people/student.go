// Package people provides use cases for managing students and teachers.
package people

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CreateStudentInput represents the input for creating a student.
type CreateStudentInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	GroupID   *uuid.UUID
}

// CreateStudentUseCase creates a new student record.
type CreateStudentUseCase struct {
	studentRepo adapter.StudentRepository
	groupRepo   adapter.GroupRepository
}

// NewCreateStudentUseCase creates a new CreateStudentUseCase instance.
func NewCreateStudentUseCase(studentRepo adapter.StudentRepository, groupRepo adapter.GroupRepository) *CreateStudentUseCase {
	return &CreateStudentUseCase{studentRepo: studentRepo, groupRepo: groupRepo}
}

// Execute validates the optional group reference and persists the student.
func (uc *CreateStudentUseCase) Execute(ctx context.Context, input CreateStudentInput) (*entity.Student, error) {
	if input.GroupID != nil {
		if _, err := uc.groupRepo.FindByID(ctx, *input.GroupID); err != nil {
			return nil, domainerror.NewRegistrationError(
				domainerror.ErrCodeGroupNotFound,
				"group not found",
				err,
			)
		}
	}

	student := entity.NewStudent(input.FirstName, input.LastName, input.Phone, input.Email, input.GroupID)
	if err := uc.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

// GetStudentUseCase reads a single student.
type GetStudentUseCase struct {
	studentRepo adapter.StudentRepository
}

// NewGetStudentUseCase creates a new GetStudentUseCase instance.
func NewGetStudentUseCase(studentRepo adapter.StudentRepository) *GetStudentUseCase {
	return &GetStudentUseCase{studentRepo: studentRepo}
}

// Execute returns the student or a not-found error.
func (uc *GetStudentUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	student, err := uc.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeStudentNotFound,
			"student not found",
			err,
		)
	}
	return student, nil
}

// ListStudentsUseCase lists all students.
type ListStudentsUseCase struct {
	studentRepo adapter.StudentRepository
}

// NewListStudentsUseCase creates a new ListStudentsUseCase instance.
func NewListStudentsUseCase(studentRepo adapter.StudentRepository) *ListStudentsUseCase {
	return &ListStudentsUseCase{studentRepo: studentRepo}
}

// Execute returns all students.
func (uc *ListStudentsUseCase) Execute(ctx context.Context) ([]*entity.Student, error) {
	students, err := uc.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// UpdateStudentInput represents a partial student update. Nil fields are left
// unchanged.
type UpdateStudentInput struct {
	StudentID uuid.UUID
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	GroupID   *uuid.UUID
	HasCV     *bool
}

// UpdateStudentUseCase updates an existing student.
type UpdateStudentUseCase struct {
	studentRepo adapter.StudentRepository
	groupRepo   adapter.GroupRepository
}

// NewUpdateStudentUseCase creates a new UpdateStudentUseCase instance.
func NewUpdateStudentUseCase(studentRepo adapter.StudentRepository, groupRepo adapter.GroupRepository) *UpdateStudentUseCase {
	return &UpdateStudentUseCase{studentRepo: studentRepo, groupRepo: groupRepo}
}

// Execute applies the provided fields and persists the student.
func (uc *UpdateStudentUseCase) Execute(ctx context.Context, input UpdateStudentInput) (*entity.Student, error) {
	student, err := uc.studentRepo.FindByID(ctx, input.StudentID)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeStudentNotFound,
			"student not found",
			err,
		)
	}

	if input.FirstName != nil {
		student.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		student.LastName = *input.LastName
	}
	if input.Phone != nil {
		student.Phone = *input.Phone
	}
	if input.Email != nil {
		student.Email = *input.Email
	}
	if input.HasCV != nil {
		student.HasCV = *input.HasCV
	}
	if input.GroupID != nil {
		if _, err := uc.groupRepo.FindByID(ctx, *input.GroupID); err != nil {
			return nil, domainerror.NewRegistrationError(
				domainerror.ErrCodeGroupNotFound,
				"group not found",
				err,
			)
		}
		student.GroupID = input.GroupID
	}

	if err := uc.studentRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return student, nil
}

// DeleteStudentUseCase soft-deletes a student.
type DeleteStudentUseCase struct {
	studentRepo adapter.StudentRepository
}

// NewDeleteStudentUseCase creates a new DeleteStudentUseCase instance.
func NewDeleteStudentUseCase(studentRepo adapter.StudentRepository) *DeleteStudentUseCase {
	return &DeleteStudentUseCase{studentRepo: studentRepo}
}

// Execute removes the student. Wallet transactions and payments are kept;
// the money ledger is append-only history.
func (uc *DeleteStudentUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.studentRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewRegistrationError(
			domainerror.ErrCodeStudentNotFound,
			"student not found",
			err,
		)
	}
	if err := uc.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}
