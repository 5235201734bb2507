// Package groupcost aggregates the financial picture of a single group:
// teacher dues, attributed and general costs, collected revenue, and the
// cash-basis profit. Every caller (list cards, profile page, dashboards)
// consumes this one computation so displayed figures cannot diverge.
package groupcost

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	"github.com/school-office/backend/internal/application/usecase/ledger"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// GetSummaryInput identifies the group to aggregate.
type GetSummaryInput struct {
	GroupID uuid.UUID
}

// Summary is the per-group financial rollup.
type Summary struct {
	GroupID uuid.UUID

	TeacherAmountDue decimal.Decimal
	TeacherPaid      decimal.Decimal
	TeacherUnpaid    decimal.Decimal

	GroupTotalCost  decimal.Decimal
	GroupPaidCost   decimal.Decimal
	GroupUnpaidCost decimal.Decimal

	// General costs are allocated with a flat even split across all groups.
	// This is the single allocation policy for the whole system.
	GeneralPaid   decimal.Decimal
	GeneralUnpaid decimal.Decimal

	RevenueCollected   decimal.Decimal
	RevenueDue         decimal.Decimal
	RevenueOutstanding decimal.Decimal

	// Profit is cash-basis: collected revenue minus costs actually paid,
	// never accrued/expected costs.
	Profit decimal.Decimal

	StudentCount int
}

// GetSummaryUseCase computes the per-group financial rollup.
type GetSummaryUseCase struct {
	groupRepo          adapter.GroupRepository
	teacherRepo        adapter.TeacherRepository
	registrationRepo   adapter.RegistrationRepository
	paymentRepo        adapter.PaymentRepository
	costRepo           adapter.CostRepository
	teacherPaymentRepo adapter.TeacherPaymentRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	groupRepo adapter.GroupRepository,
	teacherRepo adapter.TeacherRepository,
	registrationRepo adapter.RegistrationRepository,
	paymentRepo adapter.PaymentRepository,
	costRepo adapter.CostRepository,
	teacherPaymentRepo adapter.TeacherPaymentRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		groupRepo:          groupRepo,
		teacherRepo:        teacherRepo,
		registrationRepo:   registrationRepo,
		paymentRepo:        paymentRepo,
		costRepo:           costRepo,
		teacherPaymentRepo: teacherPaymentRepo,
	}
}

// Execute aggregates teacher cost, group and general costs, and student
// revenue for the group.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*Summary, error) {
	group, err := uc.groupRepo.FindByID(ctx, input.GroupID)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeGroupNotFound,
			"group not found",
			err,
		)
	}

	summary := &Summary{GroupID: group.ID}

	// Teacher dues: total hours times hourly rate, reduced by paid disbursements.
	if group.TeacherID != nil {
		teacher, err := uc.teacherRepo.FindByID(ctx, *group.TeacherID)
		if err != nil {
			return nil, domainerror.NewRegistrationError(
				domainerror.ErrCodeTeacherNotFound,
				"teacher not found",
				err,
			)
		}
		summary.TeacherAmountDue = group.TotalHours.Mul(teacher.HourlyRate)
	}

	teacherPaid, err := uc.teacherPaymentRepo.SumPaidByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum teacher payments: %w", err)
	}
	summary.TeacherPaid = teacherPaid
	summary.TeacherUnpaid = clampZero(summary.TeacherAmountDue.Sub(teacherPaid))

	// Costs attributed directly to this group.
	groupCosts, err := uc.costRepo.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group costs: %w", err)
	}
	for _, c := range groupCosts {
		summary.GroupTotalCost = summary.GroupTotalCost.Add(c.Amount)
		if c.Paid {
			summary.GroupPaidCost = summary.GroupPaidCost.Add(c.Amount)
		} else {
			summary.GroupUnpaidCost = summary.GroupUnpaidCost.Add(c.Amount)
		}
	}

	// General costs: flat even split across all groups.
	generalPaid, generalUnpaid, err := uc.generalCostShare(ctx)
	if err != nil {
		return nil, err
	}
	summary.GeneralPaid = generalPaid
	summary.GeneralUnpaid = generalUnpaid

	// Student revenue through the ledger.
	regs, err := uc.registrationRepo.FindByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	summary.StudentCount = len(regs)

	regIDs := make([]uuid.UUID, len(regs))
	for i, reg := range regs {
		regIDs[i] = reg.ID
	}
	paidByReg, err := uc.paymentRepo.SumPaidByRegistrations(ctx, regIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	for _, reg := range regs {
		ls := ledger.Compute(reg, paidByReg[reg.ID], nil)
		summary.RevenueCollected = summary.RevenueCollected.Add(ls.TotalPaid)
		summary.RevenueDue = summary.RevenueDue.Add(ls.Expected)
		summary.RevenueOutstanding = summary.RevenueOutstanding.Add(ls.Outstanding)
	}

	paidCosts := summary.TeacherPaid.Add(summary.GroupPaidCost).Add(summary.GeneralPaid)
	summary.Profit = summary.RevenueCollected.Sub(paidCosts)

	return summary, nil
}

// generalCostShare returns this group's even share of the paid and unpaid
// general cost totals.
func (uc *GetSummaryUseCase) generalCostShare(ctx context.Context) (paid, unpaid decimal.Decimal, err error) {
	general, err := uc.costRepo.ListGeneral(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to list general costs: %w", err)
	}

	totalPaid, totalUnpaid := decimal.Zero, decimal.Zero
	for _, c := range general {
		if c.Paid {
			totalPaid = totalPaid.Add(c.Amount)
		} else {
			totalUnpaid = totalUnpaid.Add(c.Amount)
		}
	}

	count, err := uc.groupRepo.Count(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to count groups: %w", err)
	}
	if count == 0 {
		return decimal.Zero, decimal.Zero, nil
	}

	divisor := decimal.NewFromInt(count)
	return totalPaid.Div(divisor), totalUnpaid.Div(divisor), nil
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}
