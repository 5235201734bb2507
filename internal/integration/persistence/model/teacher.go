package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/domain/entity"
)

// TeacherModel represents the teachers table in the database.
type TeacherModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FirstName  string          `gorm:"type:varchar(100);not null"`
	LastName   string          `gorm:"type:varchar(100)"`
	Phone      string          `gorm:"type:varchar(30)"`
	Email      string          `gorm:"type:varchar(255)"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the TeacherModel.
func (TeacherModel) TableName() string {
	return "teachers"
}

// ToEntity converts a TeacherModel to a domain Teacher entity.
func (m *TeacherModel) ToEntity() *entity.Teacher {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Teacher{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Phone:      m.Phone,
		Email:      m.Email,
		HourlyRate: m.HourlyRate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// TeacherFromEntity creates a TeacherModel from a domain Teacher entity.
func TeacherFromEntity(teacher *entity.Teacher) *TeacherModel {
	var deletedAt gorm.DeletedAt
	if teacher.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *teacher.DeletedAt, Valid: true}
	}

	return &TeacherModel{
		ID:         teacher.ID,
		FirstName:  teacher.FirstName,
		LastName:   teacher.LastName,
		Phone:      teacher.Phone,
		Email:      teacher.Email,
		HourlyRate: teacher.HourlyRate,
		CreatedAt:  teacher.CreatedAt,
		UpdatedAt:  teacher.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
