package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/usecase/groupcost"
	"github.com/school-office/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for group creation.
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Level       string  `json:"level,omitempty"`
	WeeklyHours Amount  `json:"weekly_hours"`
	TotalHours  Amount  `json:"total_hours"`
	Price       Amount  `json:"price"`
	TeacherID   *string `json:"teacher_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateGroupRequest represents a partial group update.
type UpdateGroupRequest struct {
	Name        *string    `json:"name,omitempty"`
	Level       *string    `json:"level,omitempty"`
	WeeklyHours *Amount    `json:"weekly_hours,omitempty"`
	TotalHours  *Amount    `json:"total_hours,omitempty"`
	Price       *Amount    `json:"price,omitempty"`
	TeacherID   *string    `json:"teacher_id,omitempty" binding:"omitempty,uuid"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// GroupResponse represents a group in API responses.
type GroupResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Level         string          `json:"level,omitempty"`
	WeeklyHours   decimal.Decimal `json:"weekly_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	Price         decimal.Decimal `json:"price"`
	DurationWeeks int             `json:"duration_weeks"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	TeacherID     *string         `json:"teacher_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GroupListResponse represents the response for listing groups.
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// GroupSummaryResponse represents the per-group financial rollup.
type GroupSummaryResponse struct {
	GroupID string `json:"group_id"`

	TeacherAmountDue decimal.Decimal `json:"teacher_amount_due"`
	TeacherPaid      decimal.Decimal `json:"teacher_paid"`
	TeacherUnpaid    decimal.Decimal `json:"teacher_unpaid"`

	GroupTotalCost  decimal.Decimal `json:"group_total_cost"`
	GroupPaidCost   decimal.Decimal `json:"group_paid_cost"`
	GroupUnpaidCost decimal.Decimal `json:"group_unpaid_cost"`

	GeneralPaid   decimal.Decimal `json:"general_paid"`
	GeneralUnpaid decimal.Decimal `json:"general_unpaid"`

	RevenueCollected decimal.Decimal `json:"revenue_collected"`
	RevenueDue       decimal.Decimal `json:"revenue_due"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`

	Profit       decimal.Decimal `json:"profit"`
	StudentCount int             `json:"student_count"`
}

// ToGroupResponse converts a domain Group entity to a DTO.
func ToGroupResponse(g *entity.Group) GroupResponse {
	var teacherID *string
	if g.TeacherID != nil {
		id := g.TeacherID.String()
		teacherID = &id
	}
	return GroupResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		Level:         g.Level,
		WeeklyHours:   g.WeeklyHours,
		TotalHours:    g.TotalHours,
		Price:         g.Price,
		DurationWeeks: g.DurationWeeks(),
		StartDate:     g.StartDate,
		EndDate:       g.EndDate,
		TeacherID:     teacherID,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGroupListResponse converts groups to a list response.
func ToGroupListResponse(groups []*entity.Group) GroupListResponse {
	out := make([]GroupResponse, len(groups))
	for i, g := range groups {
		out[i] = ToGroupResponse(g)
	}
	return GroupListResponse{Groups: out}
}

// ToGroupSummaryResponse converts a group cost summary to a DTO.
func ToGroupSummaryResponse(s *groupcost.Summary) GroupSummaryResponse {
	return GroupSummaryResponse{
		GroupID:          s.GroupID.String(),
		TeacherAmountDue: s.TeacherAmountDue,
		TeacherPaid:      s.TeacherPaid,
		TeacherUnpaid:    s.TeacherUnpaid,
		GroupTotalCost:   s.GroupTotalCost,
		GroupPaidCost:    s.GroupPaidCost,
		GroupUnpaidCost:  s.GroupUnpaidCost,
		GeneralPaid:      s.GeneralPaid,
		GeneralUnpaid:    s.GeneralUnpaid,
		RevenueCollected: s.RevenueCollected,
		RevenueDue:       s.RevenueDue,
		TotalOutstanding: s.RevenueOutstanding,
		Profit:           s.Profit,
		StudentCount:     s.StudentCount,
	}
}
