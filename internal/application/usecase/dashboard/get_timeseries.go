package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
)

// TimeseriesMonths is the fixed width of the cashflow chart.
const TimeseriesMonths = 12

// MonthlyPoint represents a single month in the cashflow series.
type MonthlyPoint struct {
	Month        time.Time       `json:"month"`
	MonthLabel   string          `json:"month_label"`
	PaymentsPaid decimal.Decimal `json:"payments_paid"`
	CostsTotal   decimal.Decimal `json:"costs_total"`
	Profit       decimal.Decimal `json:"profit"`
}

// GetTimeseriesOutput represents the output of the cashflow series.
type GetTimeseriesOutput struct {
	Data []MonthlyPoint `json:"data"`
}

// GetTimeseriesUseCase handles the trailing 12-month cashflow series.
type GetTimeseriesUseCase struct {
	dashboardRepo DashboardRepository
	clock         adapter.Clock
}

// NewGetTimeseriesUseCase creates a new GetTimeseriesUseCase instance.
func NewGetTimeseriesUseCase(dashboardRepo DashboardRepository, clock adapter.Clock) *GetTimeseriesUseCase {
	return &GetTimeseriesUseCase{
		dashboardRepo: dashboardRepo,
		clock:         clock,
	}
}

// Execute returns exactly 12 monthly buckets ending with the current month.
// Months without activity are present with zero values, never omitted.
func (uc *GetTimeseriesUseCase) Execute(ctx context.Context) (*GetTimeseriesOutput, error) {
	months := TrailingMonths(uc.clock.Now(), TimeseriesMonths)
	start := months[0]
	end := MonthEnd(months[len(months)-1])

	raw, err := uc.dashboardRepo.GetMonthlyCashflow(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly cashflow: %w", err)
	}

	rawByMonth := make(map[string]RawMonthCashflow, len(raw))
	for _, r := range raw {
		rawByMonth[MonthKey(r.MonthStart)] = r
	}

	data := make([]MonthlyPoint, 0, len(months))
	for _, month := range months {
		point := MonthlyPoint{
			Month:        month,
			MonthLabel:   MonthLabel(month),
			PaymentsPaid: decimal.Zero,
			CostsTotal:   decimal.Zero,
			Profit:       decimal.Zero,
		}
		if r, ok := rawByMonth[MonthKey(month)]; ok {
			point.PaymentsPaid = r.PaymentsPaid
			point.CostsTotal = r.CostsPaid.Add(r.TeacherPaid)
			point.Profit = point.PaymentsPaid.Sub(point.CostsTotal)
		}
		data = append(data, point)
	}

	return &GetTimeseriesOutput{Data: data}, nil
}
