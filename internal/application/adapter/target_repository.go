// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// TargetRepository defines the interface for target persistence operations.
type TargetRepository interface {
	// Create creates a new target in the database.
	Create(ctx context.Context, target *entity.Target) error

	// FindByID retrieves a target by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Target, error)

	// FindByIDForOrganization retrieves a target by ID, scoped to an organization.
	FindByIDForOrganization(ctx context.Context, id, organizationID uuid.UUID) (*entity.Target, error)

	// FindByOrganizationID retrieves all targets for a given organization.
	FindByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]*entity.Target, error)
}
