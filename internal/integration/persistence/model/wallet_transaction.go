package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// WalletTransactionModel represents the wallet_transactions table in the
// database. Entries are an append-only ledger: no updates, no soft delete.
type WalletTransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StudentID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind           string          `gorm:"type:varchar(25);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RegistrationID *uuid.UUID      `gorm:"type:uuid;index"`
	Note           string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null;index"`

	Student      *StudentModel      `gorm:"foreignKey:StudentID;references:ID"`
	Registration *RegistrationModel `gorm:"foreignKey:RegistrationID;references:ID"`
}

// TableName returns the table name for the WalletTransactionModel.
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}

// ToEntity converts a WalletTransactionModel to a domain WalletTransaction entity.
func (m *WalletTransactionModel) ToEntity() *entity.WalletTransaction {
	return &entity.WalletTransaction{
		ID:             m.ID,
		StudentID:      m.StudentID,
		Kind:           entity.WalletTransactionKind(m.Kind),
		Amount:         m.Amount,
		RegistrationID: m.RegistrationID,
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
	}
}

// WalletTransactionFromEntity creates a WalletTransactionModel from a domain
// WalletTransaction entity.
func WalletTransactionFromEntity(txn *entity.WalletTransaction) *WalletTransactionModel {
	return &WalletTransactionModel{
		ID:             txn.ID,
		StudentID:      txn.StudentID,
		Kind:           string(txn.Kind),
		Amount:         txn.Amount,
		RegistrationID: txn.RegistrationID,
		Note:           txn.Note,
		CreatedAt:      txn.CreatedAt,
	}
}
