package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
)

// Metrics represents the headline dashboard figures.
type Metrics struct {
	// NetCash is all-time: every payment received minus every cost and
	// teacher payment actually paid out.
	NetCash decimal.Decimal

	MonthRevenuePaid     decimal.Decimal
	MonthRevenueExpected decimal.Decimal
	MonthTeacherPaid     decimal.Decimal
	MonthTeacherExpected decimal.Decimal
	MonthCostsPaid       decimal.Decimal
	MonthCostsExpected   decimal.Decimal
}

// GetMetricsOutput represents the output of the dashboard landing view.
type GetMetricsOutput struct {
	Metrics       Metrics
	TodaySessions []*entity.GroupSession
}

// GetMetricsUseCase handles the dashboard landing view: all-time net cash,
// current-month activity, and today's sessions.
type GetMetricsUseCase struct {
	dashboardRepo DashboardRepository
	sessionRepo   adapter.SessionRepository
	clock         adapter.Clock
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(
	dashboardRepo DashboardRepository,
	sessionRepo adapter.SessionRepository,
	clock adapter.Clock,
) *GetMetricsUseCase {
	return &GetMetricsUseCase{
		dashboardRepo: dashboardRepo,
		sessionRepo:   sessionRepo,
		clock:         clock,
	}
}

// Execute aggregates the dashboard figures as of the current clock time.
func (uc *GetMetricsUseCase) Execute(ctx context.Context) (*GetMetricsOutput, error) {
	now := uc.clock.Now()

	totals, err := uc.dashboardRepo.GetCashTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cash totals: %w", err)
	}

	activity, err := uc.dashboardRepo.GetMonthActivity(ctx, MonthStart(now), MonthEnd(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get month activity: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sessions, err := uc.sessionRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's sessions: %w", err)
	}

	netCash := totals.PaymentsTotal.
		Sub(totals.CostsPaid).
		Sub(totals.TeacherPaymentsPaid)

	return &GetMetricsOutput{
		Metrics: Metrics{
			NetCash:              netCash,
			MonthRevenuePaid:     activity.RevenuePaid,
			MonthRevenueExpected: activity.RevenueExpected,
			MonthTeacherPaid:     activity.TeacherPaid,
			MonthTeacherExpected: activity.TeacherExpected,
			MonthCostsPaid:       activity.CostsPaid,
			MonthCostsExpected:   activity.CostsExpected,
		},
		TodaySessions: sessions,
	}, nil
}
