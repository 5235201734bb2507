// Package ledger computes the read-side financial view of a registration.
// Every presentation layer derives expected/paid/outstanding and the payment
// status through this package so the figures can never diverge.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

// statusEpsilon is the tolerance under which an outstanding balance counts as
// settled.
var statusEpsilon = decimal.New(1, -6) // 1e-6

// Summary is the computed ledger view of a single registration.
type Summary struct {
	RegistrationID string
	StudentID      string
	GroupID        string
	AgreedPrice    decimal.Decimal
	DiscountAmount decimal.Decimal
	DiscountPct    decimal.Decimal
	DepositPct     decimal.Decimal
	Expected       decimal.Decimal
	TotalPaid      decimal.Decimal
	Outstanding    decimal.Decimal
	Status         entity.RegistrationStatus
}

// Expected returns the amount the student owes after discount, clamped at zero.
func Expected(agreedPrice, discountAmount decimal.Decimal) decimal.Decimal {
	return clampZero(agreedPrice.Sub(discountAmount))
}

// Outstanding returns the unpaid remainder, clamped at zero so over-payment
// never produces a negative balance.
func Outstanding(expected, totalPaid decimal.Decimal) decimal.Decimal {
	return clampZero(expected.Sub(totalPaid))
}

// Status derives the tri-state payment status. A zero-price agreement is
// never PAID by convention, even when conceptually settled.
func Status(expected, totalPaid, outstanding decimal.Decimal) entity.RegistrationStatus {
	if expected.Sign() <= 0 {
		return entity.RegistrationStatusDue
	}
	if outstanding.LessThanOrEqual(statusEpsilon) {
		return entity.RegistrationStatusPaid
	}
	if totalPaid.Sign() > 0 {
		return entity.RegistrationStatusPartial
	}
	return entity.RegistrationStatusDue
}

// DiscountAmountFromPct converts a user-facing discount percentage into the
// persisted absolute amount, clamped to [0, agreedPrice].
func DiscountAmountFromPct(agreedPrice, pct decimal.Decimal) decimal.Decimal {
	amount := agreedPrice.Mul(pct).Div(decimal.NewFromInt(100))
	if amount.Sign() < 0 {
		return decimal.Zero
	}
	if amount.GreaterThan(agreedPrice) {
		return agreedPrice
	}
	return amount
}

// DiscountPctFromAmount expresses a persisted absolute discount as a
// percentage of the agreed price for display.
func DiscountPctFromAmount(agreedPrice, amount decimal.Decimal) decimal.Decimal {
	if agreedPrice.Sign() <= 0 {
		return decimal.Zero
	}
	return amount.Div(agreedPrice).Mul(decimal.NewFromInt(100))
}

// Compute builds the full ledger summary for a registration. When the data
// source supplies a pre-computed outstanding (e.g. a materialized view) it is
// preferred over the derived value; both paths must agree.
func Compute(reg *entity.Registration, totalPaid decimal.Decimal, providedOutstanding *decimal.Decimal) Summary {
	expected := Expected(reg.AgreedPrice, reg.DiscountAmount)

	outstanding := Outstanding(expected, totalPaid)
	if providedOutstanding != nil {
		outstanding = clampZero(*providedOutstanding)
	}

	return Summary{
		RegistrationID: reg.ID.String(),
		StudentID:      reg.StudentID.String(),
		GroupID:        reg.GroupID.String(),
		AgreedPrice:    reg.AgreedPrice,
		DiscountAmount: reg.DiscountAmount,
		DiscountPct:    DiscountPctFromAmount(reg.AgreedPrice, reg.DiscountAmount),
		DepositPct:     reg.DepositPct,
		Expected:       expected,
		TotalPaid:      totalPaid,
		Outstanding:    outstanding,
		Status:         Status(expected, totalPaid, outstanding),
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}
