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

// replanningHistoryRepository implements the adapter.ReplanningHistoryRepository interface.
type replanningHistoryRepository struct {
	db *gorm.DB
}

// NewReplanningHistoryRepository creates a new replanning history repository instance.
func NewReplanningHistoryRepository(db *gorm.DB) adapter.ReplanningHistoryRepository {
	return &replanningHistoryRepository{
		db: db,
	}
}

// FindByID retrieves a history record, snapshot included.
func (r *replanningHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReplanningHistoryRecord, error) {
	var historyModel model.ReplanningHistoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&historyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHistoryRecordNotFound
		}
		return nil, result.Error
	}
	return historyModel.ToEntity()
}

// FindByTargetID retrieves all history records for a target, newest first.
func (r *replanningHistoryRepository) FindByTargetID(ctx context.Context, targetID uuid.UUID) ([]*entity.ReplanningHistoryRecord, error) {
	var historyModels []model.ReplanningHistoryModel
	result := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at DESC").
		Find(&historyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ReplanningHistoryRecord, len(historyModels))
	for i, hm := range historyModels {
		record, err := hm.ToEntity()
		if err != nil {
			return nil, err
		}
		records[i] = record
	}
	return records, nil
}
