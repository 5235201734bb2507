package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name           string
		agreedPrice    string
		discountAmount string
		totalPaid      string
		expected       string
		outstanding    string
		status         entity.RegistrationStatus
	}{
		{
			name:        "negotiated price with discount partially paid",
			agreedPrice: "800", discountAmount: "50", totalPaid: "300",
			expected: "750", outstanding: "450",
			status: entity.RegistrationStatusPartial,
		},
		{
			name:        "nothing paid is due",
			agreedPrice: "500", discountAmount: "0", totalPaid: "0",
			expected: "500", outstanding: "500",
			status: entity.RegistrationStatusDue,
		},
		{
			name:        "fully paid",
			agreedPrice: "500", discountAmount: "0", totalPaid: "500",
			expected: "500", outstanding: "0",
			status: entity.RegistrationStatusPaid,
		},
		{
			name:        "over-payment clamps outstanding at zero",
			agreedPrice: "500", discountAmount: "0", totalPaid: "600",
			expected: "500", outstanding: "0",
			status: entity.RegistrationStatusPaid,
		},
		{
			name:        "discount above price clamps expected at zero",
			agreedPrice: "300", discountAmount: "400", totalPaid: "0",
			expected: "0", outstanding: "0",
			status: entity.RegistrationStatusDue,
		},
		{
			name:        "fully discounted agreement stays due",
			agreedPrice: "200", discountAmount: "200", totalPaid: "0",
			expected: "0", outstanding: "0",
			status: entity.RegistrationStatusDue,
		},
		{
			name:        "zero price agreement stays due even when paid",
			agreedPrice: "0", discountAmount: "0", totalPaid: "100",
			expected: "0", outstanding: "0",
			status: entity.RegistrationStatusDue,
		},
		{
			name:        "residual below epsilon counts as paid",
			agreedPrice: "100", discountAmount: "0", totalPaid: "99.9999995",
			expected: "100", outstanding: "0.0000005",
			status: entity.RegistrationStatusPaid,
		},
		{
			name:        "residual above epsilon stays partial",
			agreedPrice: "100", discountAmount: "0", totalPaid: "99.99",
			expected: "100", outstanding: "0.01",
			status: entity.RegistrationStatusPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := entity.NewRegistration(
				newUUID(t), newUUID(t),
				dec(tt.agreedPrice), dec(tt.discountAmount), decimal.Zero,
			)

			got := Compute(reg, dec(tt.totalPaid), nil)

			if !got.Expected.Equal(dec(tt.expected)) {
				t.Errorf("expected = %s, want %s", got.Expected, tt.expected)
			}
			if !got.Outstanding.Equal(dec(tt.outstanding)) {
				t.Errorf("outstanding = %s, want %s", got.Outstanding, tt.outstanding)
			}
			if got.Status != tt.status {
				t.Errorf("status = %s, want %s", got.Status, tt.status)
			}
			if got.Outstanding.Sign() < 0 {
				t.Error("outstanding must never be negative")
			}
		})
	}
}

func TestComputePrefersProvidedOutstanding(t *testing.T) {
	reg := entity.NewRegistration(newUUID(t), newUUID(t), dec("800"), dec("50"), decimal.Zero)

	provided := dec("450")
	got := Compute(reg, dec("300"), &provided)
	if !got.Outstanding.Equal(provided) {
		t.Errorf("outstanding = %s, want provided %s", got.Outstanding, provided)
	}

	// A negative provided value is still clamped.
	negative := dec("-10")
	got = Compute(reg, dec("800"), &negative)
	if got.Outstanding.Sign() != 0 {
		t.Errorf("outstanding = %s, want 0", got.Outstanding)
	}
}

// Status rank must be monotonic in paid amount: paying more never moves the
// status backwards.
func TestStatusMonotonicInPaidAmount(t *testing.T) {
	rank := map[entity.RegistrationStatus]int{
		entity.RegistrationStatusDue:     0,
		entity.RegistrationStatusPartial: 1,
		entity.RegistrationStatusPaid:    2,
	}

	expected := dec("750")
	prev := -1
	for paid := 0; paid <= 900; paid += 25 {
		totalPaid := decimal.NewFromInt(int64(paid))
		outstanding := Outstanding(expected, totalPaid)
		status := Status(expected, totalPaid, outstanding)
		if rank[status] < prev {
			t.Fatalf("status rank decreased at paid=%d: %s", paid, status)
		}
		prev = rank[status]
	}
}

func TestStatusInvariants(t *testing.T) {
	// PAID never occurs with outstanding above epsilon.
	if s := Status(dec("100"), dec("50"), dec("50")); s == entity.RegistrationStatusPaid {
		t.Error("PAID with outstanding > epsilon")
	}
	// PARTIAL never occurs with zero paid.
	if s := Status(dec("100"), decimal.Zero, dec("100")); s == entity.RegistrationStatusPartial {
		t.Error("PARTIAL with zero paid")
	}
}

func TestDiscountConversion(t *testing.T) {
	tests := []struct {
		name        string
		agreedPrice string
		pct         string
		amount      string
	}{
		{name: "regular percentage", agreedPrice: "800", pct: "6.25", amount: "50"},
		{name: "full discount", agreedPrice: "400", pct: "100", amount: "400"},
		{name: "over 100 percent clamps to price", agreedPrice: "400", pct: "150", amount: "400"},
		{name: "negative clamps to zero", agreedPrice: "400", pct: "-10", amount: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountAmountFromPct(dec(tt.agreedPrice), dec(tt.pct))
			if !got.Equal(dec(tt.amount)) {
				t.Errorf("DiscountAmountFromPct = %s, want %s", got, tt.amount)
			}
		})
	}

	// Round trip: 50 of 800 is 6.25%.
	pct := DiscountPctFromAmount(dec("800"), dec("50"))
	if !pct.Equal(dec("6.25")) {
		t.Errorf("DiscountPctFromAmount = %s, want 6.25", pct)
	}

	// Zero price yields zero percent, not a division error.
	if !DiscountPctFromAmount(decimal.Zero, dec("50")).IsZero() {
		t.Error("expected zero pct for zero agreed price")
	}
}
