package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// CreateTeacherPaymentRequest represents the request body for recording a
// teacher disbursement. Amount defaults to hours times the teacher's current
// rate when omitted.
type CreateTeacherPaymentRequest struct {
	TeacherID  string  `json:"teacher_id" binding:"required,uuid"`
	GroupID    string  `json:"group_id" binding:"required,uuid"`
	TotalHours Amount  `json:"total_hours" binding:"required"`
	Amount     *Amount `json:"amount,omitempty"`
	Date       *string `json:"date,omitempty"`
}

// MarkTeacherPaymentPaidRequest represents the request body for marking a
// disbursement paid.
type MarkTeacherPaymentPaidRequest struct {
	PaidDate *string `json:"paid_date,omitempty"`
}

// TeacherPaymentResponse represents a disbursement in API responses.
type TeacherPaymentResponse struct {
	ID         string          `json:"id"`
	TeacherID  string          `json:"teacher_id"`
	GroupID    string          `json:"group_id"`
	TotalHours decimal.Decimal `json:"total_hours"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
	Paid       bool            `json:"paid"`
	Date       string          `json:"date"`
	PaidDate   *string         `json:"paid_date,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TeacherPaymentListResponse represents the response for listing disbursements.
type TeacherPaymentListResponse struct {
	Payments []TeacherPaymentResponse `json:"payments"`
}

// ToTeacherPaymentResponse converts a domain TeacherPayment entity to a DTO.
func ToTeacherPaymentResponse(p *entity.TeacherPayment) TeacherPaymentResponse {
	var paidDate *string
	if p.PaidDate != nil {
		d := p.PaidDate.Format("2006-01-02")
		paidDate = &d
	}
	return TeacherPaymentResponse{
		ID:         p.ID.String(),
		TeacherID:  p.TeacherID.String(),
		GroupID:    p.GroupID.String(),
		TotalHours: p.TotalHours,
		Rate:       p.Rate,
		Amount:     p.Amount,
		Paid:       p.Paid,
		Date:       p.Date.Format("2006-01-02"),
		PaidDate:   paidDate,
		CreatedAt:  p.CreatedAt,
	}
}

// ToTeacherPaymentListResponse converts disbursements to a list response.
func ToTeacherPaymentListResponse(payments []*entity.TeacherPayment) TeacherPaymentListResponse {
	out := make([]TeacherPaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = ToTeacherPaymentResponse(p)
	}
	return TeacherPaymentListResponse{Payments: out}
}
