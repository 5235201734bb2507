package sessiongen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// CreateMakeupInput describes a manually inserted session.
type CreateMakeupInput struct {
	GroupID   uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
}

// CreateMakeupUseCase inserts a make-up session directly into the calendar.
// Make-ups record classes that already happened outside the weekly schedule,
// so they are created COMPLETED.
type CreateMakeupUseCase struct {
	groupRepo   adapter.GroupRepository
	sessionRepo adapter.SessionRepository
}

// NewCreateMakeupUseCase creates a new CreateMakeupUseCase instance.
func NewCreateMakeupUseCase(
	groupRepo adapter.GroupRepository,
	sessionRepo adapter.SessionRepository,
) *CreateMakeupUseCase {
	return &CreateMakeupUseCase{
		groupRepo:   groupRepo,
		sessionRepo: sessionRepo,
	}
}

// Execute validates the slot and creates the make-up session. The slot must
// not already hold a session, generated or manual.
func (uc *CreateMakeupUseCase) Execute(ctx context.Context, input CreateMakeupInput) (*entity.GroupSession, error) {
	if err := ValidateTimeRange(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	if _, err := uc.groupRepo.FindByID(ctx, input.GroupID); err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}

	date := truncateToDay(input.Date)
	exists, err := uc.sessionRepo.ExistsBySlot(ctx, input.GroupID, date, input.StartTime, input.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if exists {
		return nil, domainerror.NewGenerationError(
			domainerror.ErrCodeSessionExists,
			"session already exists for this slot",
			domainerror.ErrSessionExists,
		)
	}

	session := entity.NewGroupSession(
		input.GroupID,
		date,
		input.StartTime,
		input.EndTime,
		true,
		entity.SessionStatusCompleted,
	)
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}
