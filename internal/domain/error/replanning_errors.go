// Package error defines domain-specific errors for the Carbon Tracker application.
package error

import "errors"

// Replanning domain errors.
var (
	// ErrEmptyDecomposition is returned when a replan is submitted without metric targets.
	ErrEmptyDecomposition = errors.New("replan requires at least one metric target")

	// ErrMixedTargetYears is returned when submitted metric targets do not share one target year.
	ErrMixedTargetYears = errors.New("all metric targets must share one target year")

	// ErrInvalidReductionPercent is returned when a reduction percentage is negative or above 100.
	ErrInvalidReductionPercent = errors.New("reduction percent must be between 0 and 100")

	// ErrInvalidMonth is returned when a monthly entry's month is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrHistoryRecordNotFound is returned when a replanning history record is not found.
	ErrHistoryRecordNotFound = errors.New("replanning history record not found")

	// ErrStaleTargetVersion is returned when a replan was submitted against an outdated target version.
	ErrStaleTargetVersion = errors.New("target was replanned by someone else; refresh and retry")

	// ErrTargetLocked is returned when another replan or rollback currently holds the target lock.
	ErrTargetLocked = errors.New("another replanning operation is in progress for this target")

	// ErrMonthlyTargetNotFound is returned when no monthly target matches the given metric target, year and month.
	ErrMonthlyTargetNotFound = errors.New("monthly target not found")
)

// ReplanningErrorCode defines error codes for replanning errors.
// Format: RPL-XXYYYY where XX is category and YYYY is specific error.
type ReplanningErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyDecomposition      ReplanningErrorCode = "RPL-010001"
	ErrCodeMixedTargetYears        ReplanningErrorCode = "RPL-010002"
	ErrCodeInvalidReductionPercent ReplanningErrorCode = "RPL-010003"
	ErrCodeInvalidMonth            ReplanningErrorCode = "RPL-010004"
	ErrCodeMissingReplanFields     ReplanningErrorCode = "RPL-010005"

	// Lookup errors (02XXXX)
	ErrCodeHistoryRecordNotFound ReplanningErrorCode = "RPL-020001"
	ErrCodeMonthlyTargetNotFound ReplanningErrorCode = "RPL-020002"

	// Concurrency errors (03XXXX)
	ErrCodeStaleTargetVersion ReplanningErrorCode = "RPL-030001"
	ErrCodeTargetLocked       ReplanningErrorCode = "RPL-030002"

	// Persistence errors (04XXXX)
	ErrCodeReplanTransactionFailed   ReplanningErrorCode = "RPL-040001"
	ErrCodeRollbackTransactionFailed ReplanningErrorCode = "RPL-040002"
)

// ReplanningError represents a replanning error with code and message.
type ReplanningError struct {
	Code    ReplanningErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReplanningError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReplanningError) Unwrap() error {
	return e.Err
}

// NewReplanningError creates a new ReplanningError with the given code and message.
func NewReplanningError(code ReplanningErrorCode, message string, err error) *ReplanningError {
	return &ReplanningError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
