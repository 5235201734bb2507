package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/school-office/backend/internal/application/usecase/dashboard"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetCashTotals returns the all-time cash aggregates.
func (r *dashboardRepository) GetCashTotals(ctx context.Context) (*dashboard.CashTotals, error) {
	var result struct {
		PaymentsTotal       decimal.NullDecimal `gorm:"column:payments_total"`
		CostsPaid           decimal.NullDecimal `gorm:"column:costs_paid"`
		TeacherPaymentsPaid decimal.NullDecimal `gorm:"column:teacher_payments_paid"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT SUM(amount) FROM payments WHERE is_paid = true) as payments_total,
			(SELECT SUM(amount) FROM costs WHERE paid = true AND deleted_at IS NULL) as costs_paid,
			(SELECT SUM(amount) FROM teacher_payments WHERE paid = true) as teacher_payments_paid
	`).Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cash totals: %w", err)
	}

	return &dashboard.CashTotals{
		PaymentsTotal:       coalesce(result.PaymentsTotal),
		CostsPaid:           coalesce(result.CostsPaid),
		TeacherPaymentsPaid: coalesce(result.TeacherPaymentsPaid),
	}, nil
}

// GetMonthActivity returns paid/expected figures for records whose effective
// date falls within [start, end].
func (r *dashboardRepository) GetMonthActivity(ctx context.Context, start, end time.Time) (*dashboard.MonthActivity, error) {
	var result struct {
		RevenuePaid     decimal.NullDecimal `gorm:"column:revenue_paid"`
		RevenueExpected decimal.NullDecimal `gorm:"column:revenue_expected"`
		TeacherPaid     decimal.NullDecimal `gorm:"column:teacher_paid"`
		TeacherExpected decimal.NullDecimal `gorm:"column:teacher_expected"`
		CostsPaid       decimal.NullDecimal `gorm:"column:costs_paid"`
		CostsExpected   decimal.NullDecimal `gorm:"column:costs_expected"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT SUM(amount) FROM payments
				WHERE is_paid = true AND date >= ? AND date <= ?) as revenue_paid,
			(SELECT SUM(amount) FROM payments
				WHERE date >= ? AND date <= ?) as revenue_expected,
			(SELECT SUM(amount) FROM teacher_payments
				WHERE paid = true AND paid_date >= ? AND paid_date <= ?) as teacher_paid,
			(SELECT SUM(amount) FROM teacher_payments
				WHERE date >= ? AND date <= ?) as teacher_expected,
			(SELECT SUM(amount) FROM costs
				WHERE paid = true AND due_date >= ? AND due_date <= ? AND deleted_at IS NULL) as costs_paid,
			(SELECT SUM(amount) FROM costs
				WHERE due_date >= ? AND due_date <= ? AND deleted_at IS NULL) as costs_expected
	`, start, end, start, end, start, end, start, end, start, end, start, end).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get month activity: %w", err)
	}

	return &dashboard.MonthActivity{
		RevenuePaid:     coalesce(result.RevenuePaid),
		RevenueExpected: coalesce(result.RevenueExpected),
		TeacherPaid:     coalesce(result.TeacherPaid),
		TeacherExpected: coalesce(result.TeacherExpected),
		CostsPaid:       coalesce(result.CostsPaid),
		CostsExpected:   coalesce(result.CostsExpected),
	}, nil
}

// GetMonthlyCashflow returns cash movement aggregated by calendar month for
// effective dates within [start, end].
func (r *dashboardRepository) GetMonthlyCashflow(ctx context.Context, start, end time.Time) ([]dashboard.RawMonthCashflow, error) {
	var rows []struct {
		MonthStart   time.Time           `gorm:"column:month_start"`
		PaymentsPaid decimal.NullDecimal `gorm:"column:payments_paid"`
		CostsPaid    decimal.NullDecimal `gorm:"column:costs_paid"`
		TeacherPaid  decimal.NullDecimal `gorm:"column:teacher_paid"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			month_start,
			SUM(payments_paid) as payments_paid,
			SUM(costs_paid) as costs_paid,
			SUM(teacher_paid) as teacher_paid
		FROM (
			SELECT date_trunc('month', date)::date as month_start,
				amount as payments_paid, 0 as costs_paid, 0 as teacher_paid
			FROM payments
			WHERE is_paid = true AND date >= ? AND date <= ?
			UNION ALL
			SELECT date_trunc('month', due_date)::date,
				0, amount, 0
			FROM costs
			WHERE paid = true AND due_date >= ? AND due_date <= ? AND deleted_at IS NULL
			UNION ALL
			SELECT date_trunc('month', paid_date)::date,
				0, 0, amount
			FROM teacher_payments
			WHERE paid = true AND paid_date >= ? AND paid_date <= ?
		) movements
		GROUP BY month_start
		ORDER BY month_start
	`, start, end, start, end, start, end).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly cashflow: %w", err)
	}

	cashflow := make([]dashboard.RawMonthCashflow, len(rows))
	for i, row := range rows {
		cashflow[i] = dashboard.RawMonthCashflow{
			MonthStart:   row.MonthStart,
			PaymentsPaid: coalesce(row.PaymentsPaid),
			CostsPaid:    coalesce(row.CostsPaid),
			TeacherPaid:  coalesce(row.TeacherPaid),
		}
	}
	return cashflow, nil
}

func coalesce(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
