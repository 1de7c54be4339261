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

// monthlyTargetRepository implements the adapter.MonthlyTargetRepository interface.
type monthlyTargetRepository struct {
	db *gorm.DB
}

// NewMonthlyTargetRepository creates a new monthly target repository instance.
func NewMonthlyTargetRepository(db *gorm.DB) adapter.MonthlyTargetRepository {
	return &monthlyTargetRepository{
		db: db,
	}
}

// FindByMetricTargetPeriod retrieves the monthly target for one
// (metric target, year, month) cell.
func (r *monthlyTargetRepository) FindByMetricTargetPeriod(ctx context.Context, metricTargetID uuid.UUID, year, month int) (*entity.MonthlyTarget, error) {
	var monthlyModel model.MonthlyTargetModel
	result := r.db.WithContext(ctx).
		Where("metric_target_id = ? AND year = ? AND month = ?", metricTargetID, year, month).
		First(&monthlyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMonthlyTargetNotFound
		}
		return nil, result.Error
	}
	return monthlyModel.ToEntity(), nil
}

// FindByMetricTargetID retrieves all monthly targets for a metric target,
// ordered by year then month.
func (r *monthlyTargetRepository) FindByMetricTargetID(ctx context.Context, metricTargetID uuid.UUID) ([]*entity.MonthlyTarget, error) {
	var monthlyModels []model.MonthlyTargetModel
	result := r.db.WithContext(ctx).
		Where("metric_target_id = ?", metricTargetID).
		Order("year ASC, month ASC").
		Find(&monthlyModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMonthlyEntities(monthlyModels), nil
}

// FindThroughPeriod retrieves all monthly targets for a metric target whose
// (year, month) falls on or before the given cut-off.
func (r *monthlyTargetRepository) FindThroughPeriod(ctx context.Context, metricTargetID uuid.UUID, year, month int) ([]*entity.MonthlyTarget, error) {
	var monthlyModels []model.MonthlyTargetModel
	result := r.db.WithContext(ctx).
		Where("metric_target_id = ? AND (year < ? OR (year = ? AND month <= ?))", metricTargetID, year, year, month).
		Order("year ASC, month ASC").
		Find(&monthlyModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMonthlyEntities(monthlyModels), nil
}

// UpdateActuals persists the actual value/emissions/factor and status of a
// monthly target.
func (r *monthlyTargetRepository) UpdateActuals(ctx context.Context, monthlyTarget *entity.MonthlyTarget) error {
	result := r.db.WithContext(ctx).
		Model(&model.MonthlyTargetModel{}).
		Where("id = ?", monthlyTarget.ID).
		Updates(map[string]interface{}{
			"actual_value":           monthlyTarget.ActualValue,
			"actual_emissions":       monthlyTarget.ActualEmissions,
			"actual_emission_factor": monthlyTarget.ActualEmissionFactor,
			"status":                 monthlyTarget.Status,
			"updated_at":             monthlyTarget.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMonthlyTargetNotFound
	}
	return nil
}

func toMonthlyEntities(monthlyModels []model.MonthlyTargetModel) []*entity.MonthlyTarget {
	monthlyTargets := make([]*entity.MonthlyTarget, len(monthlyModels))
	for i, mm := range monthlyModels {
		monthlyTargets[i] = mm.ToEntity()
	}
	return monthlyTargets
}
