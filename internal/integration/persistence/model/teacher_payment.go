package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// TeacherPaymentModel represents the teacher_payments table in the database.
type TeacherPaymentModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TeacherID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	GroupID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalHours decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	Rate       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Paid       bool            `gorm:"default:false;index"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	PaidDate   *time.Time      `gorm:"type:date"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	Teacher *TeacherModel `gorm:"foreignKey:TeacherID;references:ID"`
	Group   *GroupModel   `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the TeacherPaymentModel.
func (TeacherPaymentModel) TableName() string {
	return "teacher_payments"
}

// ToEntity converts a TeacherPaymentModel to a domain TeacherPayment entity.
func (m *TeacherPaymentModel) ToEntity() *entity.TeacherPayment {
	return &entity.TeacherPayment{
		ID:         m.ID,
		TeacherID:  m.TeacherID,
		GroupID:    m.GroupID,
		TotalHours: m.TotalHours,
		Rate:       m.Rate,
		Amount:     m.Amount,
		Paid:       m.Paid,
		Date:       m.Date,
		PaidDate:   m.PaidDate,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TeacherPaymentFromEntity creates a TeacherPaymentModel from a domain
// TeacherPayment entity.
func TeacherPaymentFromEntity(payment *entity.TeacherPayment) *TeacherPaymentModel {
	return &TeacherPaymentModel{
		ID:         payment.ID,
		TeacherID:  payment.TeacherID,
		GroupID:    payment.GroupID,
		TotalHours: payment.TotalHours,
		Rate:       payment.Rate,
		Amount:     payment.Amount,
		Paid:       payment.Paid,
		Date:       payment.Date,
		PaidDate:   payment.PaidDate,
		CreatedAt:  payment.CreatedAt,
		UpdatedAt:  payment.UpdatedAt,
	}
}
