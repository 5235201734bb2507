package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/usecase/ledger"
	"github.com/school-office/backend/internal/domain/entity"
)

// CreateRegistrationRequest represents the request body for registration creation.
type CreateRegistrationRequest struct {
	StudentID      string  `json:"student_id" binding:"required,uuid"`
	GroupID        string  `json:"group_id" binding:"required,uuid"`
	AgreedPrice    Amount  `json:"agreed_price" binding:"required"`
	DiscountAmount *Amount `json:"discount_amount,omitempty"`
	DepositPct     *Amount `json:"deposit_pct,omitempty"`
}

// UpdateDiscountRequest represents the request body for a discount edit.
// Exactly one of amount or percent drives the update; percent is converted
// against the agreed price.
type UpdateDiscountRequest struct {
	DiscountAmount *Amount `json:"discount_amount,omitempty"`
	DiscountPct    *Amount `json:"discount_pct,omitempty"`
}

// RegistrationResponse represents a single registration in API responses.
type RegistrationResponse struct {
	ID             string          `json:"id"`
	StudentID      string          `json:"student_id"`
	GroupID        string          `json:"group_id"`
	AgreedPrice    decimal.Decimal `json:"agreed_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DepositPct     decimal.Decimal `json:"deposit_pct"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RegistrationListResponse represents the response for listing registrations.
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}

// RegistrationSummaryResponse represents the per-registration ledger summary.
type RegistrationSummaryResponse struct {
	RegistrationID    string          `json:"registrationId"`
	StudentID         string          `json:"studentId"`
	GroupID           string          `json:"groupId"`
	AgreedPrice       decimal.Decimal `json:"agreedPrice"`
	DepositPct        decimal.Decimal `json:"depositPct"`
	DiscountAmount    decimal.Decimal `json:"discountAmount"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	Status            string          `json:"status"`
}

// ToRegistrationResponse converts a domain Registration entity to a DTO.
func ToRegistrationResponse(r *entity.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:             r.ID.String(),
		StudentID:      r.StudentID.String(),
		GroupID:        r.GroupID.String(),
		AgreedPrice:    r.AgreedPrice,
		DiscountAmount: r.DiscountAmount,
		DepositPct:     r.DepositPct,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToRegistrationListResponse converts registrations to a list response.
func ToRegistrationListResponse(registrations []*entity.Registration) RegistrationListResponse {
	out := make([]RegistrationResponse, len(registrations))
	for i, r := range registrations {
		out[i] = ToRegistrationResponse(r)
	}
	return RegistrationListResponse{Registrations: out}
}

// ToRegistrationSummaryResponse converts a ledger summary to a DTO.
func ToRegistrationSummaryResponse(s *ledger.Summary) RegistrationSummaryResponse {
	return RegistrationSummaryResponse{
		RegistrationID:    s.RegistrationID,
		StudentID:         s.StudentID,
		GroupID:           s.GroupID,
		AgreedPrice:       s.AgreedPrice,
		DepositPct:        s.DepositPct,
		DiscountAmount:    s.DiscountAmount,
		TotalPaid:         s.TotalPaid,
		OutstandingAmount: s.Outstanding,
		Status:            string(s.Status),
	}
}
