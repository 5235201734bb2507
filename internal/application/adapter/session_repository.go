package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/school-office/backend/internal/domain/entity"
)

// ScheduleRepository defines the interface for group schedule persistence operations.
type ScheduleRepository interface {
	// Create creates a new group schedule in the database.
	Create(ctx context.Context, schedule *entity.GroupSchedule) error

	// FindByID retrieves a schedule by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GroupSchedule, error)

	// ListAll retrieves all schedules across all groups.
	ListAll(ctx context.Context) ([]*entity.GroupSchedule, error)

	// ListByGroup retrieves the schedules for a group.
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.GroupSchedule, error)

	// Update updates an existing schedule.
	Update(ctx context.Context, schedule *entity.GroupSchedule) error

	// Delete soft-deletes a schedule.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionRepository defines the interface for group session persistence operations.
type SessionRepository interface {
	// Create creates a new session in the database.
	Create(ctx context.Context, session *entity.GroupSession) error

	// FindByID retrieves a session by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GroupSession, error)

	// ExistsBySlot checks whether a session already exists for the exact
	// (group, date, start, end) tuple.
	ExistsBySlot(ctx context.Context, groupID uuid.UUID, date time.Time, startTime, endTime string) (bool, error)

	// ListByGroupAndRange retrieves sessions for a group within [from, to].
	ListByGroupAndRange(ctx context.Context, groupID uuid.UUID, from, to time.Time) ([]*entity.GroupSession, error)

	// ListByDate retrieves all sessions on a given date across all groups.
	ListByDate(ctx context.Context, date time.Time) ([]*entity.GroupSession, error)

	// Update updates an existing session.
	Update(ctx context.Context, session *entity.GroupSession) error

	// Delete removes a session, freeing its slot for reuse.
	Delete(ctx context.Context, id uuid.UUID) error
}
