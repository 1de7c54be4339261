// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// MetricRepository defines the interface for the emissions metric catalog.
type MetricRepository interface {
	// FindAll retrieves all metrics in the catalog.
	FindAll(ctx context.Context) ([]*entity.Metric, error)

	// FindByID retrieves a metric by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Metric, error)

	// FindByIDs retrieves the metrics for the given IDs, keyed by ID. Missing
	// IDs are simply absent from the result map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Metric, error)
}
