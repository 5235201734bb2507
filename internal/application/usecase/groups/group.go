// Package groups provides use cases for managing class groups and their
// weekly schedules.
package groups

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

// CreateGroupInput represents the input for creating a group.
type CreateGroupInput struct {
	Name        string
	Level       string
	WeeklyHours decimal.Decimal
	TotalHours  decimal.Decimal
	Price       decimal.Decimal
	TeacherID   *uuid.UUID
}

// CreateGroupUseCase creates a new group.
type CreateGroupUseCase struct {
	groupRepo   adapter.GroupRepository
	teacherRepo adapter.TeacherRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(groupRepo adapter.GroupRepository, teacherRepo adapter.TeacherRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{groupRepo: groupRepo, teacherRepo: teacherRepo}
}

// Execute validates the optional teacher reference and persists the group.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*entity.Group, error) {
	if input.TeacherID != nil {
		if _, err := uc.teacherRepo.FindByID(ctx, *input.TeacherID); err != nil {
			return nil, domainerror.NewRegistrationError(
				domainerror.ErrCodeTeacherNotFound,
				"teacher not found",
				err,
			)
		}
	}

	group := entity.NewGroup(input.Name, input.Level, input.WeeklyHours, input.TotalHours, input.Price, input.TeacherID)
	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

// GetGroupUseCase reads a single group.
type GetGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewGetGroupUseCase creates a new GetGroupUseCase instance.
func NewGetGroupUseCase(groupRepo adapter.GroupRepository) *GetGroupUseCase {
	return &GetGroupUseCase{groupRepo: groupRepo}
}

// Execute returns the group or a not-found error.
func (uc *GetGroupUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	group, err := uc.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}
	return group, nil
}

// ListGroupsUseCase lists all groups.
type ListGroupsUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{groupRepo: groupRepo}
}

// Execute returns all groups.
func (uc *ListGroupsUseCase) Execute(ctx context.Context) ([]*entity.Group, error) {
	groups, err := uc.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// UpdateGroupInput represents a partial group update. Nil fields are left
// unchanged. Setting StartDate starts the group; EndDate is derived from the
// configured duration when not given explicitly.
type UpdateGroupInput struct {
	GroupID     uuid.UUID
	Name        *string
	Level       *string
	WeeklyHours *decimal.Decimal
	TotalHours  *decimal.Decimal
	Price       *decimal.Decimal
	TeacherID   *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateGroupUseCase updates an existing group.
type UpdateGroupUseCase struct {
	groupRepo   adapter.GroupRepository
	teacherRepo adapter.TeacherRepository
}

// NewUpdateGroupUseCase creates a new UpdateGroupUseCase instance.
func NewUpdateGroupUseCase(groupRepo adapter.GroupRepository, teacherRepo adapter.TeacherRepository) *UpdateGroupUseCase {
	return &UpdateGroupUseCase{groupRepo: groupRepo, teacherRepo: teacherRepo}
}

// Execute applies the provided fields and persists the group.
func (uc *UpdateGroupUseCase) Execute(ctx context.Context, input UpdateGroupInput) (*entity.Group, error) {
	group, err := uc.groupRepo.FindByID(ctx, input.GroupID)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}

	if input.Name != nil {
		group.Name = *input.Name
	}
	if input.Level != nil {
		group.Level = *input.Level
	}
	if input.WeeklyHours != nil {
		group.WeeklyHours = *input.WeeklyHours
	}
	if input.TotalHours != nil {
		group.TotalHours = *input.TotalHours
	}
	if input.Price != nil {
		group.Price = *input.Price
	}
	if input.TeacherID != nil {
		if _, err := uc.teacherRepo.FindByID(ctx, *input.TeacherID); err != nil {
			return nil, domainerror.NewRegistrationError(
				domainerror.ErrCodeTeacherNotFound,
				"teacher not found",
				err,
			)
		}
		group.TeacherID = input.TeacherID
	}
	if input.StartDate != nil {
		group.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		group.EndDate = input.EndDate
	} else if input.StartDate != nil {
		if weeks := group.DurationWeeks(); weeks > 0 {
			end := input.StartDate.AddDate(0, 0, weeks*7)
			group.EndDate = &end
		}
	}

	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

// DeleteGroupUseCase soft-deletes a group.
type DeleteGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(groupRepo adapter.GroupRepository) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{groupRepo: groupRepo}
}

// Execute removes the group.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.groupRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}
	if err := uc.groupRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}
