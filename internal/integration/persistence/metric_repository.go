// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/integration/persistence/model"
)

// metricRepository implements the adapter.MetricRepository interface.
type metricRepository struct {
	db *gorm.DB
}

// NewMetricRepository creates a new metric repository instance.
func NewMetricRepository(db *gorm.DB) adapter.MetricRepository {
	return &metricRepository{
		db: db,
	}
}

// FindAll retrieves all metrics in the catalog.
func (r *metricRepository) FindAll(ctx context.Context) ([]*entity.Metric, error) {
	var metricModels []model.MetricModel
	result := r.db.WithContext(ctx).Order("code ASC").Find(&metricModels)
	if result.Error != nil {
		return nil, result.Error
	}

	metrics := make([]*entity.Metric, len(metricModels))
	for i, mm := range metricModels {
		metrics[i] = mm.ToEntity()
	}
	return metrics, nil
}

// FindByID retrieves a metric by its ID.
func (r *metricRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Metric, error) {
	var metricModel model.MetricModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&metricModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMetricNotFound
		}
		return nil, result.Error
	}
	return metricModel.ToEntity(), nil
}

// FindByIDs retrieves the metrics for the given IDs, keyed by ID.
func (r *metricRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Metric, error) {
	metrics := make(map[uuid.UUID]*entity.Metric, len(ids))
	if len(ids) == 0 {
		return metrics, nil
	}

	var metricModels []model.MetricModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&metricModels)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, mm := range metricModels {
		metric := mm.ToEntity()
		metrics[metric.ID] = metric
	}
	return metrics, nil
}
