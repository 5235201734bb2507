package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database. Payments are
// financial history and are never soft-deleted.
type PaymentModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RegistrationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	IsPaid         bool            `gorm:"default:true"`
	Note           string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Registration *RegistrationModel `gorm:"foreignKey:RegistrationID;references:ID"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:             m.ID,
		RegistrationID: m.RegistrationID,
		Amount:         m.Amount,
		Date:           m.Date,
		IsPaid:         m.IsPaid,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:             payment.ID,
		RegistrationID: payment.RegistrationID,
		Amount:         payment.Amount,
		Date:           payment.Date,
		IsPaid:         payment.IsPaid,
		Note:           payment.Note,
		CreatedAt:      payment.CreatedAt,
		UpdatedAt:      payment.UpdatedAt,
	}
}
