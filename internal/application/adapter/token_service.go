// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenClaims represents the verified claims of an access token issued by the
// identity layer.
type TokenClaims struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Email          string
}

// TokenService defines the interface for access token verification. Issuance
// and refresh are the identity layer's responsibility and are out of scope.
type TokenService interface {
	// ValidateAccessToken verifies a bearer token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
