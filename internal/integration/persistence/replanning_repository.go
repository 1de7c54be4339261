// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/integration/persistence/model"
)

// replanningRepository implements the adapter.ReplanningRepository interface.
// Both write operations run as a single GORM transaction: either the whole
// rewrite lands or the prior state stays untouched.
type replanningRepository struct {
	db *gorm.DB
}

// NewReplanningRepository creates a new replanning repository instance.
func NewReplanningRepository(db *gorm.DB) adapter.ReplanningRepository {
	return &replanningRepository{
		db: db,
	}
}

// ApplyReplan atomically replaces a target's decomposition and records the
// history entry.
func (r *replanningRepository) ApplyReplan(ctx context.Context, write adapter.ReplanWrite) error {
	historyModel, err := model.ReplanningHistoryFromEntity(write.History)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Version-guarded header update. Zero rows means a concurrent replan
		// won the race since the caller read the target.
		result := tx.Model(&model.TargetModel{}).
			Where("id = ? AND version = ?", write.Target.ID, write.ExpectedVersion).
			Updates(map[string]interface{}{
				"target_emissions": write.Target.TargetEmissions,
				"target_year":      write.Target.TargetYear,
				"version":          gorm.Expr("version + 1"),
				"updated_at":       write.Target.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrStaleTargetVersion
		}

		if err := destroyDecomposition(tx, write.Target.ID); err != nil {
			return err
		}

		if len(write.MetricTargets) > 0 {
			metricTargetModels := make([]*model.MetricTargetModel, len(write.MetricTargets))
			for i, mt := range write.MetricTargets {
				metricTargetModels[i] = model.MetricTargetFromEntity(mt)
			}
			if err := tx.Create(metricTargetModels).Error; err != nil {
				return err
			}
		}

		if len(write.MonthlyTargets) > 0 {
			monthlyModels := make([]*model.MonthlyTargetModel, len(write.MonthlyTargets))
			for i, mt := range write.MonthlyTargets {
				monthlyModels[i] = model.MonthlyTargetFromEntity(mt)
			}
			if err := tx.Create(monthlyModels).Error; err != nil {
				return err
			}
		}

		if len(write.Initiatives) > 0 {
			initiativeModels := make([]*model.InitiativeModel, len(write.Initiatives))
			for i, init := range write.Initiatives {
				initiativeModels[i] = model.InitiativeFromEntity(init)
			}
			if err := tx.Create(initiativeModels).Error; err != nil {
				return err
			}
		}

		return tx.Create(historyModel).Error
	})
}

// Rollback atomically restores a prior decomposition from a history snapshot.
// Monthly targets are not part of the snapshot and are not restored.
func (r *replanningRepository) Rollback(ctx context.Context, write adapter.RollbackWrite) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TargetModel{}).
			Where("id = ? AND version = ?", write.Target.ID, write.Target.Version).
			Updates(map[string]interface{}{
				"target_emissions": write.Target.TargetEmissions,
				"target_year":      write.Target.TargetYear,
				"version":          gorm.Expr("version + 1"),
				"updated_at":       write.Target.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrStaleTargetVersion
		}

		if err := destroyDecomposition(tx, write.Target.ID); err != nil {
			return err
		}

		// Re-insert snapshot rows under their original identifiers.
		if len(write.MetricTargets) > 0 {
			metricTargetModels := make([]*model.MetricTargetModel, len(write.MetricTargets))
			for i, mt := range write.MetricTargets {
				metricTargetModels[i] = model.MetricTargetFromEntity(mt)
			}
			if err := tx.Create(metricTargetModels).Error; err != nil {
				return err
			}
		}

		if len(write.Initiatives) > 0 {
			initiativeModels := make([]*model.InitiativeModel, len(write.Initiatives))
			for i, init := range write.Initiatives {
				initiativeModels[i] = model.InitiativeFromEntity(init)
			}
			if err := tx.Create(initiativeModels).Error; err != nil {
				return err
			}
		}

		// The history record is append-only: the rollback annotation is the
		// single permitted mutation.
		return tx.Model(&model.ReplanningHistoryModel{}).
			Where("id = ?", write.History.ID).
			Updates(map[string]interface{}{
				"notes":          write.History.Notes,
				"rolled_back_at": write.History.RolledBackAt,
			}).Error
	})
}

// destroyDecomposition deletes a target's metric targets together with their
// monthly breakdowns and initiatives. Deletion order respects the FK chain.
func destroyDecomposition(tx *gorm.DB, targetID uuid.UUID) error {
	var metricTargetIDs []uuid.UUID
	if err := tx.Model(&model.MetricTargetModel{}).
		Where("target_id = ?", targetID).
		Pluck("id", &metricTargetIDs).Error; err != nil {
		return err
	}

	if len(metricTargetIDs) > 0 {
		if err := tx.Where("metric_target_id IN ?", metricTargetIDs).
			Delete(&model.MonthlyTargetModel{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("target_id = ?", targetID).
		Delete(&model.InitiativeModel{}).Error; err != nil {
		return err
	}

	return tx.Where("target_id = ?", targetID).
		Delete(&model.MetricTargetModel{}).Error
}
