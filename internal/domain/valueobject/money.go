// Package valueobject defines value objects shared across the domain layer.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount normalizes a numeric value that may have round-tripped through a
// display layer or an external API. It trims whitespace, treats a comma as the
// decimal separator, and strips currency symbols and grouping noise before
// parsing. The boolean result is false when no finite value could be
// extracted; callers that aggregate should use ParseAmountOrZero instead so a
// malformed input never poisons a sum.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	s = strings.ReplaceAll(s, ",", ".")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == '-' || r == '.' || r == 'e' || r == 'E':
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseAmountOrZero coalesces an absent or malformed amount to zero.
// Used for aggregate sums where partial data must not break the total.
func ParseAmountOrZero(raw string) decimal.Decimal {
	d, ok := ParseAmount(raw)
	if !ok {
		return decimal.Zero
	}
	return d
}
