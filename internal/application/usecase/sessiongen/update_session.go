package sessiongen

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// UpdateSessionInput represents a session status change.
type UpdateSessionInput struct {
	SessionID uuid.UUID
	Status    entity.SessionStatus
}

// UpdateSessionUseCase transitions a session between PENDING, COMPLETED and
// CANCELLED. Slot fields are immutable after creation; a moved session is a
// cancellation plus a make-up.
type UpdateSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewUpdateSessionUseCase creates a new UpdateSessionUseCase instance.
func NewUpdateSessionUseCase(sessionRepo adapter.SessionRepository) *UpdateSessionUseCase {
	return &UpdateSessionUseCase{sessionRepo: sessionRepo}
}

// Execute validates the status and persists the change.
func (uc *UpdateSessionUseCase) Execute(ctx context.Context, input UpdateSessionInput) (*entity.GroupSession, error) {
	if !entity.IsValidSessionStatus(input.Status) {
		return nil, domainerror.NewGenerationError(
			domainerror.ErrCodeSessionNotFound,
			fmt.Sprintf("invalid session status %q", input.Status),
			domainerror.ErrSessionNotFound,
		)
	}

	session, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, domainerror.NewGenerationError(
			domainerror.ErrCodeSessionNotFound,
			"session not found",
			err,
		)
	}

	session.Status = input.Status
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return session, nil
}

// DeleteSessionUseCase deletes a session. The slot becomes free again; the
// generator may re-materialize it on a later run if the schedule still exists.
type DeleteSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewDeleteSessionUseCase creates a new DeleteSessionUseCase instance.
func NewDeleteSessionUseCase(sessionRepo adapter.SessionRepository) *DeleteSessionUseCase {
	return &DeleteSessionUseCase{sessionRepo: sessionRepo}
}

// Execute removes the session.
func (uc *DeleteSessionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.sessionRepo.FindByID(ctx, id); err != nil {
		return domainerror.NewGenerationError(
			domainerror.ErrCodeSessionNotFound,
			"session not found",
			err,
		)
	}
	if err := uc.sessionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
