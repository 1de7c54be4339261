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

// targetRepository implements the adapter.TargetRepository interface.
type targetRepository struct {
	db *gorm.DB
}

// NewTargetRepository creates a new target repository instance.
func NewTargetRepository(db *gorm.DB) adapter.TargetRepository {
	return &targetRepository{
		db: db,
	}
}

// Create creates a new target in the database.
func (r *targetRepository) Create(ctx context.Context, target *entity.Target) error {
	targetModel := model.TargetFromEntity(target)
	result := r.db.WithContext(ctx).Create(targetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a target by its ID.
func (r *targetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	var targetModel model.TargetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&targetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTargetNotFound
		}
		return nil, result.Error
	}
	return targetModel.ToEntity(), nil
}

// FindByIDForOrganization retrieves a target by ID, scoped to an organization.
func (r *targetRepository) FindByIDForOrganization(ctx context.Context, id, organizationID uuid.UUID) (*entity.Target, error) {
	var targetModel model.TargetModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&targetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTargetNotFound
		}
		return nil, result.Error
	}
	return targetModel.ToEntity(), nil
}

// FindByOrganizationID retrieves all targets for a given organization.
func (r *targetRepository) FindByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]*entity.Target, error) {
	var targetModels []model.TargetModel
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&targetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	targets := make([]*entity.Target, len(targetModels))
	for i, tm := range targetModels {
		targets[i] = tm.ToEntity()
	}
	return targets, nil
}
