// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// GetCashTotals returns the all-time cash aggregates.
	GetCashTotals(ctx context.Context) (*CashTotals, error)

	// GetMonthActivity returns paid/expected figures for records whose
	// effective date falls within [start, end].
	GetMonthActivity(ctx context.Context, start, end time.Time) (*MonthActivity, error)

	// GetMonthlyCashflow returns cash movement aggregated by calendar month
	// for effective dates within [start, end]. Months without activity are
	// absent from the result.
	GetMonthlyCashflow(ctx context.Context, start, end time.Time) ([]RawMonthCashflow, error)
}

// CashTotals represents all-time cash aggregates.
type CashTotals struct {
	PaymentsTotal       decimal.Decimal
	CostsPaid           decimal.Decimal
	TeacherPaymentsPaid decimal.Decimal
}

// MonthActivity represents paid and expected figures for one month. Expected
// sums every record dated in the month; paid sums only the settled ones.
type MonthActivity struct {
	RevenuePaid     decimal.Decimal
	RevenueExpected decimal.Decimal
	TeacherPaid     decimal.Decimal
	TeacherExpected decimal.Decimal
	CostsPaid       decimal.Decimal
	CostsExpected   decimal.Decimal
}

// RawMonthCashflow represents raw monthly cash movement from the database.
type RawMonthCashflow struct {
	MonthStart   time.Time
	PaymentsPaid decimal.Decimal
	CostsPaid    decimal.Decimal
	TeacherPaid  decimal.Decimal
}
