package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/school-office/backend/internal/application/adapter"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// GetSummaryInput identifies the registration to summarize.
type GetSummaryInput struct {
	StudentID uuid.UUID
	GroupID   uuid.UUID
}

// GetSummaryOutput wraps the computed ledger summary.
type GetSummaryOutput struct {
	Summary Summary
}

// GetSummaryUseCase computes the ledger view for one (student, group) pair.
type GetSummaryUseCase struct {
	registrationRepo adapter.RegistrationRepository
	paymentRepo      adapter.PaymentRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	registrationRepo adapter.RegistrationRepository,
	paymentRepo adapter.PaymentRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		registrationRepo: registrationRepo,
		paymentRepo:      paymentRepo,
	}
}

// Execute fetches the registration and its payments and derives the summary.
// The ledger is a pure read-side computation over Payment and Registration
// rows; nothing is cached or stored, so a payment created elsewhere is
// reflected on the next read.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	reg, err := uc.registrationRepo.FindByStudentAndGroup(ctx, input.StudentID, input.GroupID)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeRegistrationNotFound,
			"registration not found",
			err,
		)
	}

	totalPaid, err := uc.paymentRepo.SumPaidByRegistration(ctx, reg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	return &GetSummaryOutput{Summary: Compute(reg, totalPaid, nil)}, nil
}
