package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// DepositRequest represents the request body for a wallet deposit.
type DepositRequest struct {
	Amount Amount `json:"amount" binding:"required"`
	Note   string `json:"note,omitempty"`
}

// ApplyRequest represents the request body for applying wallet credit to a
// registration.
type ApplyRequest struct {
	RegistrationID string `json:"registration_id" binding:"required,uuid"`
	Amount         Amount `json:"amount" binding:"required"`
	Note           string `json:"note,omitempty"`
}

// WalletTransactionResponse represents a single wallet ledger entry.
type WalletTransactionResponse struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	RegistrationID *string         `json:"registration_id,omitempty"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// WalletResponse represents a student's wallet balance and recent history.
type WalletResponse struct {
	StudentID    string                      `json:"student_id"`
	Balance      decimal.Decimal             `json:"balance"`
	Transactions []WalletTransactionResponse `json:"transactions"`
}

// ToWalletTransactionResponse converts a wallet transaction entity to a DTO.
func ToWalletTransactionResponse(txn *entity.WalletTransaction) WalletTransactionResponse {
	var regID *string
	if txn.RegistrationID != nil {
		id := txn.RegistrationID.String()
		regID = &id
	}
	return WalletTransactionResponse{
		ID:             txn.ID.String(),
		Kind:           string(txn.Kind),
		Amount:         txn.Amount,
		RegistrationID: regID,
		Note:           txn.Note,
		CreatedAt:      txn.CreatedAt,
	}
}

// ToWalletResponse converts a balance and transaction history to a DTO.
func ToWalletResponse(studentID string, balance decimal.Decimal, txns []*entity.WalletTransaction) WalletResponse {
	out := make([]WalletTransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToWalletTransactionResponse(txn)
	}
	return WalletResponse{
		StudentID:    studentID,
		Balance:      balance,
		Transactions: out,
	}
}
