package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/application/adapter"
	domainerror "github.com/school-office/backend/internal/domain/error"
)

// UpdateDiscountInput carries the new discount for a registration. Exactly one
// of DiscountAmount or DiscountPct must be provided; a percentage is converted
// to the persisted absolute amount.
type UpdateDiscountInput struct {
	RegistrationID uuid.UUID
	DiscountAmount *decimal.Decimal
	DiscountPct    *decimal.Decimal
}

// UpdateDiscountUseCase edits a registration's discount.
//
// Discount editing is deliberately independent of the wallet: changing the
// discount changes expected and outstanding without any minimum-payable
// validation. Discount edits and wallet applications are two separately
// authorized operations.
type UpdateDiscountUseCase struct {
	registrationRepo adapter.RegistrationRepository
	paymentRepo      adapter.PaymentRepository
}

// NewUpdateDiscountUseCase creates a new UpdateDiscountUseCase instance.
func NewUpdateDiscountUseCase(
	registrationRepo adapter.RegistrationRepository,
	paymentRepo adapter.PaymentRepository,
) *UpdateDiscountUseCase {
	return &UpdateDiscountUseCase{
		registrationRepo: registrationRepo,
		paymentRepo:      paymentRepo,
	}
}

// Execute validates and persists the discount, clamped to [0, agreedPrice].
func (uc *UpdateDiscountUseCase) Execute(ctx context.Context, input UpdateDiscountInput) (*GetSummaryOutput, error) {
	reg, err := uc.registrationRepo.FindByID(ctx, input.RegistrationID)
	if err != nil {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeRegistrationNotFound,
			"registration not found",
			err,
		)
	}

	var amount decimal.Decimal
	switch {
	case input.DiscountAmount != nil:
		amount = *input.DiscountAmount
	case input.DiscountPct != nil:
		amount = DiscountAmountFromPct(reg.AgreedPrice, *input.DiscountPct)
	default:
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeInvalidDiscount,
			"either discount_amount or discount_pct is required",
			domainerror.ErrInvalidDiscount,
		)
	}

	if amount.Sign() < 0 {
		return nil, domainerror.NewRegistrationError(
			domainerror.ErrCodeInvalidDiscount,
			"discount must not be negative",
			domainerror.ErrInvalidDiscount,
		)
	}
	if amount.GreaterThan(reg.AgreedPrice) {
		amount = reg.AgreedPrice
	}

	if err := uc.registrationRepo.UpdateDiscount(ctx, reg.ID, amount); err != nil {
		return nil, fmt.Errorf("failed to update discount: %w", err)
	}

	totalPaid, err := uc.paymentRepo.SumPaidByRegistration(ctx, reg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	reg.DiscountAmount = amount
	return &GetSummaryOutput{Summary: Compute(reg, totalPaid, nil)}, nil
}
