package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/domain/entity"
)

// GroupScheduleModel represents the group_schedules table in the database.
type GroupScheduleModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	GroupID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	DayOfWeek int            `gorm:"not null"`
	StartTime string         `gorm:"type:varchar(5);not null"`
	EndTime   string         `gorm:"type:varchar(5);not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Group *GroupModel `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the GroupScheduleModel.
func (GroupScheduleModel) TableName() string {
	return "group_schedules"
}

// ToEntity converts a GroupScheduleModel to a domain GroupSchedule entity.
func (m *GroupScheduleModel) ToEntity() *entity.GroupSchedule {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.GroupSchedule{
		ID:        m.ID,
		GroupID:   m.GroupID,
		DayOfWeek: m.DayOfWeek,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// ScheduleFromEntity creates a GroupScheduleModel from a domain GroupSchedule entity.
func ScheduleFromEntity(schedule *entity.GroupSchedule) *GroupScheduleModel {
	var deletedAt gorm.DeletedAt
	if schedule.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *schedule.DeletedAt, Valid: true}
	}

	return &GroupScheduleModel{
		ID:        schedule.ID,
		GroupID:   schedule.GroupID,
		DayOfWeek: schedule.DayOfWeek,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		CreatedAt: schedule.CreatedAt,
		UpdatedAt: schedule.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
