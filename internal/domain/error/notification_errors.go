// Package error defines domain-specific errors for the Carbon Tracker application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrNotificationJobNotFound is returned when a notification job is not found.
	ErrNotificationJobNotFound = errors.New("notification job not found")

	// ErrNotificationSendFailed is returned when the email provider rejects a send.
	ErrNotificationSendFailed = errors.New("failed to send notification")

	// ErrUnknownTemplate is returned when a job references an unknown template type.
	ErrUnknownTemplate = errors.New("unknown notification template")
)

// NotificationErrorCode defines error codes for notification errors.
type NotificationErrorCode string

const (
	ErrCodeUnknownTemplate         NotificationErrorCode = "NTF-010001"
	ErrCodeNotificationQueueFailed NotificationErrorCode = "NTF-010002"
	ErrCodeNotificationJobNotFound NotificationErrorCode = "NTF-020001"
	ErrCodeNotificationSendFailed  NotificationErrorCode = "NTF-030001"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
