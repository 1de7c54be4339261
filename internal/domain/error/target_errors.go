// Package error defines domain-specific errors for the Carbon Tracker application.
package error

import "errors"

// Target domain errors.
var (
	// ErrTargetNotFound is returned when a target is not found in the system.
	ErrTargetNotFound = errors.New("target not found")

	// ErrTargetNotOwnedByOrganization is returned when a target does not belong to the calling organization.
	ErrTargetNotOwnedByOrganization = errors.New("target does not belong to organization")

	// ErrInvalidTargetYears is returned when the target year is not after the baseline year.
	ErrInvalidTargetYears = errors.New("target year must be after baseline year")

	// ErrInvalidTargetEmissions is returned when baseline or target emissions are negative.
	ErrInvalidTargetEmissions = errors.New("emissions values must not be negative")

	// ErrMetricNotFound is returned when a referenced metric does not exist in the catalog.
	ErrMetricNotFound = errors.New("metric not found")

	// ErrMetricTargetNotFound is returned when a metric target is not found.
	ErrMetricTargetNotFound = errors.New("metric target not found")
)

// TargetErrorCode defines error codes for target errors.
// Format: TGT-XXYYYY where XX is category and YYYY is specific error.
type TargetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetYears     TargetErrorCode = "TGT-010001"
	ErrCodeInvalidTargetEmissions TargetErrorCode = "TGT-010002"
	ErrCodeMissingTargetFields    TargetErrorCode = "TGT-010003"

	// Lookup errors (02XXXX)
	ErrCodeTargetNotFound       TargetErrorCode = "TGT-020001"
	ErrCodeTargetNotOwned       TargetErrorCode = "TGT-020002"
	ErrCodeTargetMetricNotFound TargetErrorCode = "TGT-020003"
)

// TargetError represents a target error with code and message.
type TargetError struct {
	Code    TargetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TargetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError creates a new TargetError with the given code and message.
func NewTargetError(code TargetErrorCode, message string, err error) *TargetError {
	return &TargetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
