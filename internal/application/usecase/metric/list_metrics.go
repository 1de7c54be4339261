// Package metric contains metric catalog use cases.
package metric

import (
	"context"
	"fmt"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// ListMetricsOutput represents the output of listing the metric catalog.
type ListMetricsOutput struct {
	Metrics []*entity.Metric
}

// ListMetricsUseCase lists the emissions metric catalog.
type ListMetricsUseCase struct {
	metricRepo adapter.MetricRepository
}

// NewListMetricsUseCase creates a new ListMetricsUseCase instance.
func NewListMetricsUseCase(metricRepo adapter.MetricRepository) *ListMetricsUseCase {
	return &ListMetricsUseCase{
		metricRepo: metricRepo,
	}
}

// Execute lists all catalog metrics.
func (uc *ListMetricsUseCase) Execute(ctx context.Context) (*ListMetricsOutput, error) {
	metrics, err := uc.metricRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	return &ListMetricsOutput{
		Metrics: metrics,
	}, nil
}
