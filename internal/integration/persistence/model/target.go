// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// TargetModel represents the reduction_targets table in the database.
type TargetModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrganizationID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Description       string          `gorm:"type:text"`
	BaselineYear      int             `gorm:"not null"`
	BaselineEmissions decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TargetYear        int             `gorm:"not null"`
	TargetEmissions   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status            string          `gorm:"type:varchar(20);not null;default:'active'"`
	Version           int64           `gorm:"not null;default:1"`
	CreatedBy         uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	DeletedAt         gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TargetModel.
func (TargetModel) TableName() string {
	return "reduction_targets"
}

// ToEntity converts a TargetModel to a domain Target entity.
func (m *TargetModel) ToEntity() *entity.Target {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Target{
		ID:                m.ID,
		OrganizationID:    m.OrganizationID,
		Name:              m.Name,
		Description:       m.Description,
		BaselineYear:      m.BaselineYear,
		BaselineEmissions: m.BaselineEmissions,
		TargetYear:        m.TargetYear,
		TargetEmissions:   m.TargetEmissions,
		Status:            entity.TargetStatus(m.Status),
		Version:           m.Version,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// TargetFromEntity creates a TargetModel from a domain Target entity.
func TargetFromEntity(target *entity.Target) *TargetModel {
	var deletedAt gorm.DeletedAt
	if target.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *target.DeletedAt, Valid: true}
	}

	return &TargetModel{
		ID:                target.ID,
		OrganizationID:    target.OrganizationID,
		Name:              target.Name,
		Description:       target.Description,
		BaselineYear:      target.BaselineYear,
		BaselineEmissions: target.BaselineEmissions,
		TargetYear:        target.TargetYear,
		TargetEmissions:   target.TargetEmissions,
		Status:            string(target.Status),
		Version:           target.Version,
		CreatedBy:         target.CreatedBy,
		CreatedAt:         target.CreatedAt,
		UpdatedAt:         target.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
