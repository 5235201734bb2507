// Package error defines domain-specific errors for the School Office application.
package error

import "errors"

// Wallet domain errors.
var (
	// ErrInvalidAmount is returned when an amount is non-numeric, non-finite,
	// zero, or negative where a positive value is required.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientCredit is returned when a wallet application exceeds the
	// current balance. The balance is never partially debited.
	ErrInsufficientCredit = errors.New("insufficient wallet credit")

	// ErrWalletStudentNotFound is returned when the referenced student is absent.
	ErrWalletStudentNotFound = errors.New("student not found")

	// ErrWalletRegistrationNotFound is returned when applying credit to an
	// absent registration.
	ErrWalletRegistrationNotFound = errors.New("registration not found")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WAL-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount              WalletErrorCode = "WAL-010001"
	ErrCodeInsufficientCredit         WalletErrorCode = "WAL-010002"
	ErrCodeWalletStudentNotFound      WalletErrorCode = "WAL-010003"
	ErrCodeWalletRegistrationNotFound WalletErrorCode = "WAL-010004"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited WalletErrorCode = "WAL-020001"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
