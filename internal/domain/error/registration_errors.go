package error

import "errors"

// Registration and ledger domain errors.
var (
	// ErrRegistrationNotFound is returned when a registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrStudentNotFound is returned when a student is not found.
	ErrStudentNotFound = errors.New("student not found")

	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")

	// ErrTeacherNotFound is returned when a teacher is not found.
	ErrTeacherNotFound = errors.New("teacher not found")

	// ErrInvalidDiscount is returned when a discount is negative or not a
	// finite value. Discount amounts above the agreed price are clamped, not
	// rejected.
	ErrInvalidDiscount = errors.New("invalid discount")

	// ErrRegistrationExists is returned when the student is already registered
	// in the group.
	ErrRegistrationExists = errors.New("student already registered in group")

	// ErrInvalidPrice is returned when an agreed price is negative.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrTeacherPaymentNotFound is returned when a teacher disbursement is not found.
	ErrTeacherPaymentNotFound = errors.New("teacher payment not found")
)

// RegistrationErrorCode defines error codes for registration errors.
// Format: REG-XXYYYY where XX is category and YYYY is specific error.
type RegistrationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRegistrationNotFound   RegistrationErrorCode = "REG-010001"
	ErrCodeStudentNotFound        RegistrationErrorCode = "REG-010002"
	ErrCodeGroupNotFound          RegistrationErrorCode = "REG-010003"
	ErrCodeInvalidDiscount        RegistrationErrorCode = "REG-010004"
	ErrCodeRegistrationExists     RegistrationErrorCode = "REG-010005"
	ErrCodeTeacherNotFound        RegistrationErrorCode = "REG-010006"
	ErrCodeTeacherPaymentNotFound RegistrationErrorCode = "REG-010007"
	ErrCodeInvalidPrice           RegistrationErrorCode = "REG-010008"
)

// RegistrationError represents a registration error with code and message.
type RegistrationError struct {
	Code    RegistrationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// NewRegistrationError creates a new RegistrationError with the given code and message.
func NewRegistrationError(code RegistrationErrorCode, message string, err error) *RegistrationError {
	return &RegistrationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
