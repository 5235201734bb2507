package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/domain/entity"
)

// GroupSessionModel represents the group_sessions table in the database.
// The composite unique index backs the one-session-per-slot invariant; the
// generator's read-check narrows the race and the index closes it.
type GroupSessionModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	GroupID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_group_sessions_slot"`
	Date      time.Time      `gorm:"type:date;not null;uniqueIndex:idx_group_sessions_slot;index"`
	StartTime string         `gorm:"type:varchar(5);not null;uniqueIndex:idx_group_sessions_slot"`
	EndTime   string         `gorm:"type:varchar(5);not null;uniqueIndex:idx_group_sessions_slot"`
	IsMakeup  bool           `gorm:"default:false"`
	Status    string         `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Group *GroupModel `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the GroupSessionModel.
func (GroupSessionModel) TableName() string {
	return "group_sessions"
}

// ToEntity converts a GroupSessionModel to a domain GroupSession entity.
func (m *GroupSessionModel) ToEntity() *entity.GroupSession {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.GroupSession{
		ID:        m.ID,
		GroupID:   m.GroupID,
		Date:      m.Date,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		IsMakeup:  m.IsMakeup,
		Status:    entity.SessionStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// SessionFromEntity creates a GroupSessionModel from a domain GroupSession entity.
func SessionFromEntity(session *entity.GroupSession) *GroupSessionModel {
	var deletedAt gorm.DeletedAt
	if session.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *session.DeletedAt, Valid: true}
	}

	return &GroupSessionModel{
		ID:        session.ID,
		GroupID:   session.GroupID,
		Date:      session.Date,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		IsMakeup:  session.IsMakeup,
		Status:    string(session.Status),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
