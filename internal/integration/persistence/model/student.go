// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/domain/entity"
)

// StudentModel represents the students table in the database.
type StudentModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FirstName string         `gorm:"type:varchar(100);not null"`
	LastName  string         `gorm:"type:varchar(100)"`
	Phone     string         `gorm:"type:varchar(30)"`
	Email     string         `gorm:"type:varchar(255)"`
	GroupID   *uuid.UUID     `gorm:"type:uuid;index"`
	HasCV     bool           `gorm:"default:false"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	Group *GroupModel `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the StudentModel.
func (StudentModel) TableName() string {
	return "students"
}

// ToEntity converts a StudentModel to a domain Student entity.
func (m *StudentModel) ToEntity() *entity.Student {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Student{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		Email:     m.Email,
		GroupID:   m.GroupID,
		HasCV:     m.HasCV,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// StudentFromEntity creates a StudentModel from a domain Student entity.
func StudentFromEntity(student *entity.Student) *StudentModel {
	var deletedAt gorm.DeletedAt
	if student.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *student.DeletedAt, Valid: true}
	}

	return &StudentModel{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Phone:     student.Phone,
		Email:     student.Email,
		GroupID:   student.GroupID,
		HasCV:     student.HasCV,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
