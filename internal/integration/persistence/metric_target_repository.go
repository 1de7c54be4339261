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

// metricTargetRepository implements the adapter.MetricTargetRepository interface.
type metricTargetRepository struct {
	db *gorm.DB
}

// NewMetricTargetRepository creates a new metric target repository instance.
func NewMetricTargetRepository(db *gorm.DB) adapter.MetricTargetRepository {
	return &metricTargetRepository{
		db: db,
	}
}

// FindByTargetID retrieves all metric targets for a target.
func (r *metricTargetRepository) FindByTargetID(ctx context.Context, targetID uuid.UUID) ([]*entity.MetricTarget, error) {
	var metricTargetModels []model.MetricTargetModel
	result := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at ASC").
		Find(&metricTargetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	metricTargets := make([]*entity.MetricTarget, len(metricTargetModels))
	for i, mtm := range metricTargetModels {
		metricTargets[i] = mtm.ToEntity()
	}
	return metricTargets, nil
}

// FindByID retrieves a metric target by its ID.
func (r *metricTargetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MetricTarget, error) {
	var metricTargetModel model.MetricTargetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&metricTargetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMetricTargetNotFound
		}
		return nil, result.Error
	}
	return metricTargetModel.ToEntity(), nil
}

// initiativeRepository implements the adapter.InitiativeRepository interface.
type initiativeRepository struct {
	db *gorm.DB
}

// NewInitiativeRepository creates a new initiative repository instance.
func NewInitiativeRepository(db *gorm.DB) adapter.InitiativeRepository {
	return &initiativeRepository{
		db: db,
	}
}

// FindByTargetID retrieves all initiatives linked to a target.
func (r *initiativeRepository) FindByTargetID(ctx context.Context, targetID uuid.UUID) ([]*entity.Initiative, error) {
	var initiativeModels []model.InitiativeModel
	result := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at ASC").
		Find(&initiativeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	initiatives := make([]*entity.Initiative, len(initiativeModels))
	for i, im := range initiativeModels {
		initiatives[i] = im.ToEntity()
	}
	return initiatives, nil
}
