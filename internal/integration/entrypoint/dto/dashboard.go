package dto

import (
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the landing dashboard view.
type DashboardResponse struct {
	NetCash decimal.Decimal `json:"net_cash"`

	MonthRevenuePaid     decimal.Decimal `json:"month_revenue_paid"`
	MonthRevenueExpected decimal.Decimal `json:"month_revenue_expected"`
	MonthTeacherPaid     decimal.Decimal `json:"month_teacher_paid"`
	MonthTeacherExpected decimal.Decimal `json:"month_teacher_expected"`
	MonthCostsPaid       decimal.Decimal `json:"month_costs_paid"`
	MonthCostsExpected   decimal.Decimal `json:"month_costs_expected"`

	TodaySessions []SessionResponse `json:"today_sessions"`
}

// TimeseriesResponse represents the trailing 12-month cashflow chart.
type TimeseriesResponse struct {
	Data []dashboard.MonthlyPoint `json:"data"`
}

// ToDashboardResponse converts dashboard metrics to a DTO.
func ToDashboardResponse(out *dashboard.GetMetricsOutput) DashboardResponse {
	sessions := make([]SessionResponse, len(out.TodaySessions))
	for i, s := range out.TodaySessions {
		sessions[i] = ToSessionResponse(s)
	}
	return DashboardResponse{
		NetCash:              out.Metrics.NetCash,
		MonthRevenuePaid:     out.Metrics.MonthRevenuePaid,
		MonthRevenueExpected: out.Metrics.MonthRevenueExpected,
		MonthTeacherPaid:     out.Metrics.MonthTeacherPaid,
		MonthTeacherExpected: out.Metrics.MonthTeacherExpected,
		MonthCostsPaid:       out.Metrics.MonthCostsPaid,
		MonthCostsExpected:   out.Metrics.MonthCostsExpected,
		TodaySessions:        sessions,
	}
}
