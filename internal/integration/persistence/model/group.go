package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/domain/entity"
)

// GroupModel represents the groups table in the database.
type GroupModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Level       string          `gorm:"type:varchar(20)"`
	WeeklyHours decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	TotalHours  decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartDate   *time.Time      `gorm:"type:date"`
	EndDate     *time.Time      `gorm:"type:date"`
	TeacherID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`

	Teacher *TeacherModel `gorm:"foreignKey:TeacherID;references:ID"`
}

// TableName returns the table name for the GroupModel.
func (GroupModel) TableName() string {
	return "groups"
}

// ToEntity converts a GroupModel to a domain Group entity.
func (m *GroupModel) ToEntity() *entity.Group {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Group{
		ID:          m.ID,
		Name:        m.Name,
		Level:       m.Level,
		WeeklyHours: m.WeeklyHours,
		TotalHours:  m.TotalHours,
		Price:       m.Price,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		TeacherID:   m.TeacherID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// GroupFromEntity creates a GroupModel from a domain Group entity.
func GroupFromEntity(group *entity.Group) *GroupModel {
	var deletedAt gorm.DeletedAt
	if group.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *group.DeletedAt, Valid: true}
	}

	return &GroupModel{
		ID:          group.ID,
		Name:        group.Name,
		Level:       group.Level,
		WeeklyHours: group.WeeklyHours,
		TotalHours:  group.TotalHours,
		Price:       group.Price,
		StartDate:   group.StartDate,
		EndDate:     group.EndDate,
		TeacherID:   group.TeacherID,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
