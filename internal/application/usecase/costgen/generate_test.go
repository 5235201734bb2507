package costgen

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeTemplateRepo struct {
	templates []*entity.CostTemplate
}

func (r *fakeTemplateRepo) Create(_ context.Context, t *entity.CostTemplate) error {
	r.templates = append(r.templates, t)
	return nil
}
func (r *fakeTemplateRepo) FindByID(context.Context, uuid.UUID) (*entity.CostTemplate, error) {
	return nil, domainerror.ErrTemplateNotFound
}
func (r *fakeTemplateRepo) List(context.Context) ([]*entity.CostTemplate, error) {
	return r.templates, nil
}
func (r *fakeTemplateRepo) ListActive(context.Context) ([]*entity.CostTemplate, error) {
	var active []*entity.CostTemplate
	for _, t := range r.templates {
		if t.Active {
			active = append(active, t)
		}
	}
	return active, nil
}
func (r *fakeTemplateRepo) Update(context.Context, *entity.CostTemplate) error { return nil }
func (r *fakeTemplateRepo) Delete(context.Context, uuid.UUID) error            { return nil }

type fakeCostRepo struct {
	costs        []*entity.Cost
	failTemplate *uuid.UUID // Create fails for costs of this template
}

func (r *fakeCostRepo) Create(_ context.Context, c *entity.Cost) error {
	if r.failTemplate != nil && c.TemplateID != nil && *c.TemplateID == *r.failTemplate {
		return errors.New("storage unavailable")
	}
	r.costs = append(r.costs, c)
	return nil
}
func (r *fakeCostRepo) FindByID(context.Context, uuid.UUID) (*entity.Cost, error) {
	return nil, domainerror.ErrCostNotFound
}
func (r *fakeCostRepo) FindLatestByTemplate(_ context.Context, templateID uuid.UUID) (*entity.Cost, error) {
	var matches []*entity.Cost
	for _, c := range r.costs {
		if c.TemplateID != nil && *c.TemplateID == templateID {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].DueDate.After(matches[j].DueDate) })
	return matches[0], nil
}
func (r *fakeCostRepo) List(context.Context) ([]*entity.Cost, error) { return r.costs, nil }
func (r *fakeCostRepo) ListByGroup(context.Context, uuid.UUID) ([]*entity.Cost, error) {
	return nil, nil
}
func (r *fakeCostRepo) ListGeneral(context.Context) ([]*entity.Cost, error) { return nil, nil }
func (r *fakeCostRepo) Update(context.Context, *entity.Cost) error          { return nil }
func (r *fakeCostRepo) Delete(context.Context, uuid.UUID) error             { return nil }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	base := date(2025, 6, 1)

	tests := []struct {
		frequency entity.CostFrequency
		want      time.Time
	}{
		{entity.CostFrequencyDaily, date(2025, 6, 2)},
		{entity.CostFrequencyWeekly, date(2025, 6, 8)},
		{entity.CostFrequencyMonthly, date(2025, 7, 1)},
		{entity.CostFrequencyYearly, date(2026, 6, 1)},
	}
	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			got, err := NextDueDate(base, tt.frequency)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextDueDate = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := NextDueDate(base, entity.CostFrequency("fortnightly")); !errors.Is(err, domainerror.ErrInvalidFrequency) {
		t.Errorf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestGenerateMonthlyTemplate(t *testing.T) {
	template := entity.NewCostTemplate("office rent", decimal.NewFromInt(3000), entity.CostTypeFixed, entity.CostFrequencyMonthly, nil, "")
	templateRepo := &fakeTemplateRepo{templates: []*entity.CostTemplate{template}}

	// Last generated cost due 2025-06-01; running on 2025-07-15 must create
	// exactly one cost due 2025-07-01.
	seeded := entity.NewCost(template.Name, template.Amount, template.Type, template.Frequency,
		date(2025, 6, 1), date(2025, 6, 1), "", &template.ID, nil)
	costRepo := &fakeCostRepo{costs: []*entity.Cost{seeded}}

	clock := &fakeClock{now: time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC)}
	uc := NewGenerateUseCase(templateRepo, costRepo, clock)

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Generated != 1 || report.Failed != 0 {
		t.Fatalf("report = %+v, want 1 generated", report)
	}

	latest, _ := costRepo.FindLatestByTemplate(context.Background(), template.ID)
	if !latest.DueDate.Equal(date(2025, 7, 1)) {
		t.Errorf("new cost due %v, want 2025-07-01", latest.DueDate)
	}
	if latest.Paid {
		t.Error("materialized cost must be unpaid")
	}

	// Second run the same day: 2025-07-01 + 1 month = 2025-08-01 > today,
	// nothing further is created.
	report, err = uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Generated != 0 || report.Skipped != 1 {
		t.Errorf("second run report = %+v, want 0 generated / 1 skipped", report)
	}
	if len(costRepo.costs) != 2 {
		t.Errorf("total costs = %d, want 2", len(costRepo.costs))
	}
}

func TestGenerateAnchorsAtNowWithoutPriorCost(t *testing.T) {
	template := entity.NewCostTemplate("cleaning", decimal.NewFromInt(200), entity.CostTypeVariable, entity.CostFrequencyWeekly, nil, "")
	templateRepo := &fakeTemplateRepo{templates: []*entity.CostTemplate{template}}
	costRepo := &fakeCostRepo{}
	clock := &fakeClock{now: time.Date(2025, 7, 15, 9, 30, 0, 0, time.UTC)}

	uc := NewGenerateUseCase(templateRepo, costRepo, clock)

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Generated != 1 {
		t.Fatalf("report = %+v, want 1 generated", report)
	}
	if !costRepo.costs[0].DueDate.Equal(date(2025, 7, 15)) {
		t.Errorf("first occurrence due %v, want today", costRepo.costs[0].DueDate)
	}
}

func TestGenerateAdvancesOnePeriodPerRun(t *testing.T) {
	template := entity.NewCostTemplate("internet", decimal.NewFromInt(50), entity.CostTypeFixed, entity.CostFrequencyMonthly, nil, "")
	templateRepo := &fakeTemplateRepo{templates: []*entity.CostTemplate{template}}

	// Three months behind: only one occurrence per run, the backlog drains
	// across successive runs.
	seeded := entity.NewCost(template.Name, template.Amount, template.Type, template.Frequency,
		date(2025, 3, 1), date(2025, 3, 1), "", &template.ID, nil)
	costRepo := &fakeCostRepo{costs: []*entity.Cost{seeded}}
	clock := &fakeClock{now: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)}

	uc := NewGenerateUseCase(templateRepo, costRepo, clock)

	for run, wantDue := range []time.Time{date(2025, 4, 1), date(2025, 5, 1), date(2025, 6, 1), date(2025, 7, 1)} {
		report, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		if report.Generated != 1 {
			t.Fatalf("run %d: report = %+v, want 1 generated", run, report)
		}
		latest, _ := costRepo.FindLatestByTemplate(context.Background(), template.ID)
		if !latest.DueDate.Equal(wantDue) {
			t.Fatalf("run %d: due %v, want %v", run, latest.DueDate, wantDue)
		}
	}

	// Backlog drained.
	report, _ := uc.Execute(context.Background())
	if report.Generated != 0 {
		t.Errorf("drained run generated %d, want 0", report.Generated)
	}
}

func TestGenerateIsolatesPerTemplateFailures(t *testing.T) {
	broken := entity.NewCostTemplate("broken", decimal.NewFromInt(10), entity.CostTypeFixed, entity.CostFrequencyDaily, nil, "")
	healthy := entity.NewCostTemplate("healthy", decimal.NewFromInt(20), entity.CostTypeFixed, entity.CostFrequencyDaily, nil, "")
	templateRepo := &fakeTemplateRepo{templates: []*entity.CostTemplate{broken, healthy}}

	costRepo := &fakeCostRepo{failTemplate: &broken.ID}
	clock := &fakeClock{now: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)}

	uc := NewGenerateUseCase(templateRepo, costRepo, clock)

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("batch must not abort on per-template failure: %v", err)
	}
	if report.Failed != 1 || report.Generated != 1 {
		t.Errorf("report = %+v, want 1 failed and 1 generated", report)
	}
}

func TestGenerateIgnoresInactiveTemplates(t *testing.T) {
	template := entity.NewCostTemplate("archived", decimal.NewFromInt(10), entity.CostTypeFixed, entity.CostFrequencyDaily, nil, "")
	template.Active = false
	templateRepo := &fakeTemplateRepo{templates: []*entity.CostTemplate{template}}
	costRepo := &fakeCostRepo{}

	uc := NewGenerateUseCase(templateRepo, costRepo, &fakeClock{now: time.Now()})

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Generated != 0 || len(costRepo.costs) != 0 {
		t.Errorf("inactive template must not generate, report = %+v", report)
	}
}
