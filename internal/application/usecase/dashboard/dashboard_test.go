package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeDashboardRepo struct {
	totals   CashTotals
	activity MonthActivity
	cashflow []RawMonthCashflow

	gotStart, gotEnd time.Time
}

func (r *fakeDashboardRepo) GetCashTotals(context.Context) (*CashTotals, error) {
	return &r.totals, nil
}
func (r *fakeDashboardRepo) GetMonthActivity(_ context.Context, start, end time.Time) (*MonthActivity, error) {
	r.gotStart, r.gotEnd = start, end
	return &r.activity, nil
}
func (r *fakeDashboardRepo) GetMonthlyCashflow(_ context.Context, start, end time.Time) ([]RawMonthCashflow, error) {
	r.gotStart, r.gotEnd = start, end
	return r.cashflow, nil
}

type fakeSessionRepo struct {
	byDate map[string][]*entity.GroupSession
}

func (r *fakeSessionRepo) Create(context.Context, *entity.GroupSession) error { return nil }
func (r *fakeSessionRepo) FindByID(context.Context, uuid.UUID) (*entity.GroupSession, error) {
	return nil, domainerror.ErrSessionNotFound
}
func (r *fakeSessionRepo) ExistsBySlot(context.Context, uuid.UUID, time.Time, string, string) (bool, error) {
	return false, nil
}
func (r *fakeSessionRepo) ListByGroupAndRange(context.Context, uuid.UUID, time.Time, time.Time) ([]*entity.GroupSession, error) {
	return nil, nil
}
func (r *fakeSessionRepo) ListByDate(_ context.Context, d time.Time) ([]*entity.GroupSession, error) {
	return r.byDate[d.Format("2006-01-02")], nil
}
func (r *fakeSessionRepo) Update(context.Context, *entity.GroupSession) error { return nil }
func (r *fakeSessionRepo) Delete(context.Context, uuid.UUID) error            { return nil }

func TestTrailingMonths(t *testing.T) {
	months := TrailingMonths(time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC), 12)

	if len(months) != 12 {
		t.Fatalf("len = %d, want 12", len(months))
	}
	if !months[0].Equal(date(2024, 8, 1)) {
		t.Errorf("first month = %v, want 2024-08-01", months[0])
	}
	if !months[11].Equal(date(2025, 7, 1)) {
		t.Errorf("last month = %v, want 2025-07-01", months[11])
	}
	for i := 1; i < len(months); i++ {
		if !months[i].Equal(months[i-1].AddDate(0, 1, 0)) {
			t.Fatalf("months are not consecutive at index %d", i)
		}
	}
}

func TestMonthHelpers(t *testing.T) {
	d := time.Date(2025, 2, 17, 15, 4, 0, 0, time.UTC)

	if got := MonthStart(d); !got.Equal(date(2025, 2, 1)) {
		t.Errorf("MonthStart = %v", got)
	}
	if got := MonthEnd(d); !got.Equal(date(2025, 2, 28)) {
		t.Errorf("MonthEnd = %v", got)
	}
	if got := MonthKey(d); got != "2025-02" {
		t.Errorf("MonthKey = %q", got)
	}
	if got := MonthLabel(d); got != "Feb 2025" {
		t.Errorf("MonthLabel = %q", got)
	}
}

func TestGetMetrics(t *testing.T) {
	repo := &fakeDashboardRepo{
		totals: CashTotals{
			PaymentsTotal:       dec("10000"),
			CostsPaid:           dec("3000"),
			TeacherPaymentsPaid: dec("4500"),
		},
		activity: MonthActivity{
			RevenuePaid:     dec("1200"),
			RevenueExpected: dec("2000"),
			TeacherPaid:     dec("800"),
			TeacherExpected: dec("1000"),
			CostsPaid:       dec("300"),
			CostsExpected:   dec("450"),
		},
	}
	session := entity.NewGroupSession(uuid.New(), date(2025, 7, 16), "10:00", "11:00", false, entity.SessionStatusPending)
	sessionRepo := &fakeSessionRepo{byDate: map[string][]*entity.GroupSession{
		"2025-07-16": {session},
	}}
	clock := &fakeClock{now: time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)}

	uc := NewGetMetricsUseCase(repo, sessionRepo, clock)

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Metrics.NetCash.Equal(dec("2500")) {
		t.Errorf("net cash = %s, want 2500", got.Metrics.NetCash)
	}
	if !got.Metrics.MonthRevenueExpected.Equal(dec("2000")) {
		t.Errorf("month revenue expected = %s", got.Metrics.MonthRevenueExpected)
	}
	if len(got.TodaySessions) != 1 || got.TodaySessions[0].ID != session.ID {
		t.Errorf("today's sessions = %+v", got.TodaySessions)
	}
	if !repo.gotStart.Equal(date(2025, 7, 1)) || !repo.gotEnd.Equal(date(2025, 7, 31)) {
		t.Errorf("month bounds = [%v, %v]", repo.gotStart, repo.gotEnd)
	}
}

func TestGetTimeseriesZeroFillsEmptyMonths(t *testing.T) {
	repo := &fakeDashboardRepo{
		cashflow: []RawMonthCashflow{
			{MonthStart: date(2025, 3, 1), PaymentsPaid: dec("2000"), CostsPaid: dec("400"), TeacherPaid: dec("600")},
			{MonthStart: date(2025, 7, 1), PaymentsPaid: dec("500"), CostsPaid: dec("900"), TeacherPaid: dec("0")},
		},
	}
	clock := &fakeClock{now: time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)}

	uc := NewGetTimeseriesUseCase(repo, clock)

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Data) != 12 {
		t.Fatalf("buckets = %d, want exactly 12", len(got.Data))
	}

	if !got.Data[0].Month.Equal(date(2024, 8, 1)) || !got.Data[11].Month.Equal(date(2025, 7, 1)) {
		t.Errorf("window = [%v, %v]", got.Data[0].Month, got.Data[11].Month)
	}

	// 2025-03 carries data: costsTotal = otherCosts + teacherCosts.
	march := got.Data[7]
	if !march.Month.Equal(date(2025, 3, 1)) {
		t.Fatalf("bucket 7 = %v, want 2025-03-01", march.Month)
	}
	if !march.CostsTotal.Equal(dec("1000")) || !march.Profit.Equal(dec("1000")) {
		t.Errorf("march = %+v", march)
	}

	// 2025-07 runs at a loss.
	july := got.Data[11]
	if !july.Profit.Equal(dec("-400")) {
		t.Errorf("july profit = %s, want -400", july.Profit)
	}

	// Every other month is present and zero-valued.
	zeroed := 0
	for _, p := range got.Data {
		if p.PaymentsPaid.IsZero() && p.CostsTotal.IsZero() && p.Profit.IsZero() {
			zeroed++
		}
	}
	if zeroed != 10 {
		t.Errorf("zero-filled buckets = %d, want 10", zeroed)
	}

	if !repo.gotStart.Equal(date(2024, 8, 1)) || !repo.gotEnd.Equal(date(2025, 7, 31)) {
		t.Errorf("query range = [%v, %v]", repo.gotStart, repo.gotEnd)
	}
}
