package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TeacherPayment is a disbursement to a teacher for hours taught in a group.
// Teacher dues per group are total hours times rate; the unpaid remainder is
// dues minus the sum of paid disbursements.
type TeacherPayment struct {
	ID         uuid.UUID
	TeacherID  uuid.UUID
	GroupID    uuid.UUID
	TotalHours decimal.Decimal
	Rate       decimal.Decimal
	Amount     decimal.Decimal
	Paid       bool
	Date       time.Time
	PaidDate   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTeacherPayment creates a new TeacherPayment entity. Date is the business
// date of the disbursement, defaulting to today; monthly reports bucket on it
// rather than on the creation timestamp.
func NewTeacherPayment(teacherID, groupID uuid.UUID, totalHours, rate, amount decimal.Decimal) *TeacherPayment {
	now := time.Now().UTC()

	return &TeacherPayment{
		ID:         uuid.New(),
		TeacherID:  teacherID,
		GroupID:    groupID,
		TotalHours: totalHours,
		Rate:       rate,
		Amount:     amount,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
