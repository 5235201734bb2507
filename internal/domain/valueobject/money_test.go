package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{name: "plain integer", raw: "800", expected: "800", ok: true},
		{name: "plain decimal", raw: "123.45", expected: "123.45", ok: true},
		{name: "comma decimal separator", raw: "123,45", expected: "123.45", ok: true},
		{name: "leading and trailing whitespace", raw: "  42.5  ", expected: "42.5", ok: true},
		{name: "currency symbol", raw: "$1500.00", expected: "1500", ok: true},
		{name: "currency suffix", raw: "750 DH", expected: "750", ok: true},
		{name: "embedded spaces", raw: "1 500", expected: "1500", ok: true},
		{name: "negative value", raw: "-30", expected: "-30", ok: true},
		{name: "scientific notation", raw: "1.5e2", expected: "150", ok: true},
		{name: "empty string", raw: "", ok: false},
		{name: "whitespace only", raw: "   ", ok: false},
		{name: "letters only", raw: "abc", ok: false},
		{name: "ambiguous grouping and decimal", raw: "1,234.56", ok: false},
		{name: "lone minus", raw: "-", ok: false},
		{name: "multiple dots", raw: "1.2.3", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			want, err := decimal.NewFromString(tt.expected)
			if err != nil {
				t.Fatalf("bad expected value %q: %v", tt.expected, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got, want)
			}
		})
	}
}

func TestParseAmountOrZero(t *testing.T) {
	if got := ParseAmountOrZero("garbage"); !got.IsZero() {
		t.Errorf("expected zero for malformed input, got %s", got)
	}
	if got := ParseAmountOrZero("99,9"); !got.Equal(decimal.RequireFromString("99.9")) {
		t.Errorf("expected 99.9, got %s", got)
	}
}
