// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/school-office/backend/internal/domain/valueobject"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Amount is a money value that accepts JSON numbers as well as noisy numeric
// strings ("1 200,50", "300 MAD"). Values round-trip through spreadsheets and
// display layers, so every boundary runs them through normalization.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)

	value, ok := valueobject.ParseAmount(raw)
	if !ok {
		return fmt.Errorf("invalid amount: %q", raw)
	}
	a.Decimal = value
	return nil
}
