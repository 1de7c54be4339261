// Package error defines domain-specific errors for the Carbon Tracker application.
package error

import "errors"

// Identity/token errors. Token issuance belongs to the identity layer; this
// service only verifies bearer tokens carrying actor and organization claims.
var (
	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrMissingOrganizationClaim is returned when a token lacks the organization claim.
	ErrMissingOrganizationClaim = errors.New("token is missing the organization claim")
)

// AuthErrorCode defines error codes for identity errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeRateLimited     AuthErrorCode = "AUTH-020003"
	ErrCodeInvalidToken    AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken    AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken    AuthErrorCode = "AUTH-030003"
	ErrCodeMissingOrgClaim AuthErrorCode = "AUTH-030004"
)
