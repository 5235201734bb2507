package entity

import (
	"time"

	"github.com/google/uuid"
)

// GroupSchedule represents a recurring weekly time slot for a group.
// DayOfWeek follows the 0-6 Sunday-based convention.
type GroupSchedule struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	DayOfWeek int
	StartTime string // "15:04" wall-clock format
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewGroupSchedule creates a new GroupSchedule entity.
func NewGroupSchedule(groupID uuid.UUID, dayOfWeek int, startTime, endTime string) *GroupSchedule {
	now := time.Now().UTC()

	return &GroupSchedule{
		ID:        uuid.New(),
		GroupID:   groupID,
		DayOfWeek: dayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidDayOfWeek validates the 0-6 day-of-week range.
func IsValidDayOfWeek(day int) bool {
	return day >= 0 && day <= 6
}

// ParseClockTime parses a "15:04" wall-clock string.
func ParseClockTime(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}
