package error

import "errors"

// Generator domain errors. A skipped item is not an error: generators log
// skips at debug level and never surface them.
var (
	// ErrTemplateNotFound is returned when a cost template is not found.
	ErrTemplateNotFound = errors.New("cost template not found")

	// ErrCostNotFound is returned when a cost is not found.
	ErrCostNotFound = errors.New("cost not found")

	// ErrScheduleNotFound is returned when a group schedule is not found.
	ErrScheduleNotFound = errors.New("group schedule not found")

	// ErrSessionNotFound is returned when a group session is not found.
	ErrSessionNotFound = errors.New("group session not found")

	// ErrSessionExists is returned when a session already exists for the same
	// (group, date, start, end) slot.
	ErrSessionExists = errors.New("session already exists for this slot")

	// ErrInvalidFrequency is returned when a cost frequency is not one of
	// daily, weekly, monthly, yearly.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidDayOfWeek is returned when a schedule day is outside 0-6.
	ErrInvalidDayOfWeek = errors.New("invalid day of week")

	// ErrInvalidTimeRange is returned when a slot's times are malformed or
	// end does not follow start.
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// GenerationErrorCode defines error codes for generator errors.
// Format: GEN-XXYYYY where XX is category and YYYY is specific error.
type GenerationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTemplateNotFound GenerationErrorCode = "GEN-010001"
	ErrCodeCostNotFound     GenerationErrorCode = "GEN-010002"
	ErrCodeScheduleNotFound GenerationErrorCode = "GEN-010003"
	ErrCodeSessionNotFound  GenerationErrorCode = "GEN-010004"
	ErrCodeSessionExists    GenerationErrorCode = "GEN-010005"
	ErrCodeInvalidFrequency GenerationErrorCode = "GEN-010006"
	ErrCodeInvalidDayOfWeek GenerationErrorCode = "GEN-010007"
	ErrCodeInvalidTimeRange GenerationErrorCode = "GEN-010008"
)

// GenerationError represents a generator error with code and message.
type GenerationError struct {
	Code    GenerationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError creates a new GenerationError with the given code and message.
func NewGenerationError(code GenerationErrorCode, message string, err error) *GenerationError {
	return &GenerationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
