// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// MonthlyTargetRepository defines persistence operations on monthly targets.
// Only actual fields are ever mutated here; planned rows are created and
// destroyed exclusively by the replanning engine.
type MonthlyTargetRepository interface {
	// FindByMetricTargetPeriod retrieves the monthly target for one
	// (metric target, year, month) cell.
	FindByMetricTargetPeriod(ctx context.Context, metricTargetID uuid.UUID, year, month int) (*entity.MonthlyTarget, error)

	// FindByMetricTargetID retrieves all monthly targets for a metric target,
	// ordered by year then month.
	FindByMetricTargetID(ctx context.Context, metricTargetID uuid.UUID) ([]*entity.MonthlyTarget, error)

	// FindThroughPeriod retrieves all monthly targets for a metric target
	// whose (year, month) falls on or before the given cut-off.
	FindThroughPeriod(ctx context.Context, metricTargetID uuid.UUID, year, month int) ([]*entity.MonthlyTarget, error)

	// UpdateActuals persists the actual value/emissions/factor and status of
	// a monthly target.
	UpdateActuals(ctx context.Context, monthlyTarget *entity.MonthlyTarget) error
}
