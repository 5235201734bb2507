package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the completion status of a concrete session.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "PENDING"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusCancelled SessionStatus = "CANCELLED"
)

// GroupSession represents a concrete calendar occurrence of a group, either
// generated from a weekly schedule or inserted directly as a make-up.
// At most one session may exist per (group, date, start, end) slot.
type GroupSession struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	Date      time.Time // Date component only
	StartTime string    // "15:04" wall-clock format
	EndTime   string
	IsMakeup  bool
	Status    SessionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewGroupSession creates a new GroupSession entity.
func NewGroupSession(groupID uuid.UUID, date time.Time, startTime, endTime string, isMakeup bool, status SessionStatus) *GroupSession {
	now := time.Now().UTC()

	return &GroupSession{
		ID:        uuid.New(),
		GroupID:   groupID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		IsMakeup:  isMakeup,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidSessionStatus validates a session status value.
func IsValidSessionStatus(status SessionStatus) bool {
	switch status {
	case SessionStatusPending, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}
