package costgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/domain/entity"
)

// Report summarizes one generator run.
type Report struct {
	Generated int
	Skipped   int
	Failed    int
}

// GenerateUseCase runs one pass of the recurring cost generator.
//
// Policy: at most one occurrence is materialized per template per run, even
// when multiple periods have elapsed. A backlog therefore drains at one entry
// per run; catching up fully requires multiple runs.
type GenerateUseCase struct {
	templateRepo adapter.CostTemplateRepository
	costRepo     adapter.CostRepository
	clock        adapter.Clock
}

// NewGenerateUseCase creates a new GenerateUseCase instance.
func NewGenerateUseCase(
	templateRepo adapter.CostTemplateRepository,
	costRepo adapter.CostRepository,
	clock adapter.Clock,
) *GenerateUseCase {
	return &GenerateUseCase{
		templateRepo: templateRepo,
		costRepo:     costRepo,
		clock:        clock,
	}
}

// Execute processes every active template. A failure on one template is
// logged and isolated; the remaining templates are still processed.
func (uc *GenerateUseCase) Execute(ctx context.Context) (*Report, error) {
	templates, err := uc.templateRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active cost templates: %w", err)
	}

	report := &Report{}
	for _, template := range templates {
		generated, err := uc.processTemplate(ctx, template)
		switch {
		case err != nil:
			report.Failed++
			slog.Error("Cost generation failed for template",
				"template_id", template.ID,
				"template_name", template.Name,
				"error", err,
			)
		case generated:
			report.Generated++
		default:
			report.Skipped++
		}
	}

	slog.Info("Cost generation run finished",
		"generated", report.Generated,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report, nil
}

// processTemplate materializes at most one cost for the template.
func (uc *GenerateUseCase) processTemplate(ctx context.Context, template *entity.CostTemplate) (bool, error) {
	last, err := uc.costRepo.FindLatestByTemplate(ctx, template.ID)
	if err != nil {
		return false, fmt.Errorf("failed to find latest cost: %w", err)
	}

	now := uc.clock.Now()
	today := truncateToDay(now)

	// With no prior occurrence the computation anchors at now: the first
	// occurrence is due immediately.
	next := today
	if last != nil {
		next, err = NextDueDate(last.DueDate, template.Frequency)
		if err != nil {
			return false, err
		}
	}

	if next.After(today) {
		slog.Debug("Cost generation skipped, not yet due",
			"template_id", template.ID,
			"next_due", next,
		)
		return false, nil
	}

	cost := entity.NewCost(
		template.Name,
		template.Amount,
		template.Type,
		template.Frequency,
		next,
		next,
		template.Notes,
		&template.ID,
		template.GroupID,
	)
	if err := uc.costRepo.Create(ctx, cost); err != nil {
		return false, fmt.Errorf("failed to create cost: %w", err)
	}

	slog.Debug("Cost materialized from template",
		"template_id", template.ID,
		"cost_id", cost.ID,
		"due_date", cost.DueDate,
	)
	return true, nil
}
