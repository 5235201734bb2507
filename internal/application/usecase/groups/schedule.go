package groups

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/application/usecase/sessiongen"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CreateScheduleInput represents the input for adding a weekly slot to a group.
type CreateScheduleInput struct {
	GroupID   uuid.UUID
	DayOfWeek int
	StartTime string
	EndTime   string
}

// CreateScheduleUseCase adds a recurring weekly slot to a group. The slot only
// describes recurrence; concrete sessions are materialized by the generator.
type CreateScheduleUseCase struct {
	groupRepo    adapter.GroupRepository
	scheduleRepo adapter.ScheduleRepository
}

// NewCreateScheduleUseCase creates a new CreateScheduleUseCase instance.
func NewCreateScheduleUseCase(groupRepo adapter.GroupRepository, scheduleRepo adapter.ScheduleRepository) *CreateScheduleUseCase {
	return &CreateScheduleUseCase{groupRepo: groupRepo, scheduleRepo: scheduleRepo}
}

// Execute validates the slot and persists the schedule.
func (uc *CreateScheduleUseCase) Execute(ctx context.Context, input CreateScheduleInput) (*entity.GroupSchedule, error) {
	if _, err := uc.groupRepo.FindByID(ctx, input.GroupID); err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}
	if !entity.IsValidDayOfWeek(input.DayOfWeek) {
		return nil, domainerror.NewGenerationError(
			domainerror.ErrCodeInvalidDayOfWeek,
			fmt.Sprintf("day of week %d outside 0-6", input.DayOfWeek),
			domainerror.ErrInvalidDayOfWeek,
		)
	}
	if err := sessiongen.ValidateTimeRange(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	schedule := entity.NewGroupSchedule(input.GroupID, input.DayOfWeek, input.StartTime, input.EndTime)
	if err := uc.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule, nil
}

// ListSchedulesUseCase lists the weekly slots of a group.
type ListSchedulesUseCase struct {
	groupRepo    adapter.GroupRepository
	scheduleRepo adapter.ScheduleRepository
}

// NewListSchedulesUseCase creates a new ListSchedulesUseCase instance.
func NewListSchedulesUseCase(groupRepo adapter.GroupRepository, scheduleRepo adapter.ScheduleRepository) *ListSchedulesUseCase {
	return &ListSchedulesUseCase{groupRepo: groupRepo, scheduleRepo: scheduleRepo}
}

// Execute returns the group's schedules ordered by day then start time.
func (uc *ListSchedulesUseCase) Execute(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupSchedule, error) {
	if _, err := uc.groupRepo.FindByID(ctx, groupID); err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}
	schedules, err := uc.scheduleRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

// DeleteScheduleUseCase removes a weekly slot. Already-materialized sessions
// are untouched; only future generation stops.
type DeleteScheduleUseCase struct {
	scheduleRepo adapter.ScheduleRepository
}

// NewDeleteScheduleUseCase creates a new DeleteScheduleUseCase instance.
func NewDeleteScheduleUseCase(scheduleRepo adapter.ScheduleRepository) *DeleteScheduleUseCase {
	return &DeleteScheduleUseCase{scheduleRepo: scheduleRepo}
}

// Execute removes the schedule.
func (uc *DeleteScheduleUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.scheduleRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewGenerationError(
			domainerror.ErrCodeScheduleNotFound,
			"schedule not found",
			err,
		)
	}
	if err := uc.scheduleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}
