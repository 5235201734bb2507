package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/domain/entity"
)

// RegistrationModel represents the registrations table in the database.
type RegistrationModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StudentID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	GroupID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	AgreedPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DepositPct     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Status         string          `gorm:"type:varchar(10);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`

	Student *StudentModel `gorm:"foreignKey:StudentID;references:ID"`
	Group   *GroupModel   `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the RegistrationModel.
func (RegistrationModel) TableName() string {
	return "registrations"
}

// ToEntity converts a RegistrationModel to a domain Registration entity.
func (m *RegistrationModel) ToEntity() *entity.Registration {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Registration{
		ID:             m.ID,
		StudentID:      m.StudentID,
		GroupID:        m.GroupID,
		AgreedPrice:    m.AgreedPrice,
		DiscountAmount: m.DiscountAmount,
		DepositPct:     m.DepositPct,
		Status:         entity.RegistrationStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// RegistrationFromEntity creates a RegistrationModel from a domain Registration entity.
func RegistrationFromEntity(registration *entity.Registration) *RegistrationModel {
	var deletedAt gorm.DeletedAt
	if registration.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *registration.DeletedAt, Valid: true}
	}

	return &RegistrationModel{
		ID:             registration.ID,
		StudentID:      registration.StudentID,
		GroupID:        registration.GroupID,
		AgreedPrice:    registration.AgreedPrice,
		DiscountAmount: registration.DiscountAmount,
		DepositPct:     registration.DepositPct,
		Status:         string(registration.Status),
		CreatedAt:      registration.CreatedAt,
		UpdatedAt:      registration.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
