package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletTransactionKind classifies a wallet ledger entry.
type WalletTransactionKind string

const (
	WalletKindDeposit             WalletTransactionKind = "DEPOSIT"
	WalletKindApplyToRegistration WalletTransactionKind = "APPLY_TO_REGISTRATION"
	WalletKindRefund              WalletTransactionKind = "REFUND"
	WalletKindAdjustment          WalletTransactionKind = "ADJUSTMENT"
)

// WalletTransaction is a signed entry in a student's prepaid credit ledger.
// Deposits are positive, applications negative. The wallet balance is the sum
// of all entries and must never go negative.
type WalletTransaction struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	Kind           WalletTransactionKind
	Amount         decimal.Decimal
	RegistrationID *uuid.UUID // Set for APPLY_TO_REGISTRATION entries
	Note           string
	CreatedAt      time.Time
}

// NewWalletTransaction creates a new WalletTransaction entity.
func NewWalletTransaction(studentID uuid.UUID, kind WalletTransactionKind, amount decimal.Decimal, registrationID *uuid.UUID, note string) *WalletTransaction {
	return &WalletTransaction{
		ID:             uuid.New(),
		StudentID:      studentID,
		Kind:           kind,
		Amount:         amount,
		RegistrationID: registrationID,
		Note:           note,
		CreatedAt:      time.Now().UTC(),
	}
}
