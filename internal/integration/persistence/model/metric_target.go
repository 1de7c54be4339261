// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// MetricTargetModel represents the metric_targets table in the database.
// Rows are destroyed and recreated wholesale on every replan of the owning
// target; monthly targets cascade with them.
type MetricTargetModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TargetID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	MetricID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	BaselineYear           int             `gorm:"not null"`
	BaselineValue          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BaselineEmissions      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TargetYear             int             `gorm:"not null"`
	TargetValue            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TargetEmissions        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReductionPercent       decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	StrategyType           string          `gorm:"type:varchar(20);not null"`
	BaselineEmissionFactor decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	TargetEmissionFactor   decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	Status                 string          `gorm:"type:varchar(20);not null;default:'active'"`
	ConfidenceLevel        string          `gorm:"type:varchar(10);not null;default:'medium'"`
	Notes                  string          `gorm:"type:text"`
	CreatedBy              uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt              time.Time       `gorm:"not null"`
	UpdatedAt              time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Target *TargetModel `gorm:"foreignKey:TargetID;references:ID"`
	Metric *MetricModel `gorm:"foreignKey:MetricID;references:ID"`
}

// TableName returns the table name for the MetricTargetModel.
func (MetricTargetModel) TableName() string {
	return "metric_targets"
}

// ToEntity converts a MetricTargetModel to a domain MetricTarget entity.
func (m *MetricTargetModel) ToEntity() *entity.MetricTarget {
	return &entity.MetricTarget{
		ID:                     m.ID,
		TargetID:               m.TargetID,
		MetricID:               m.MetricID,
		BaselineYear:           m.BaselineYear,
		BaselineValue:          m.BaselineValue,
		BaselineEmissions:      m.BaselineEmissions,
		TargetYear:             m.TargetYear,
		TargetValue:            m.TargetValue,
		TargetEmissions:        m.TargetEmissions,
		ReductionPercent:       m.ReductionPercent,
		StrategyType:           entity.StrategyType(m.StrategyType),
		BaselineEmissionFactor: m.BaselineEmissionFactor,
		TargetEmissionFactor:   m.TargetEmissionFactor,
		Status:                 entity.MetricTargetStatus(m.Status),
		ConfidenceLevel:        entity.ConfidenceLevel(m.ConfidenceLevel),
		Notes:                  m.Notes,
		CreatedBy:              m.CreatedBy,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// MetricTargetFromEntity creates a MetricTargetModel from a domain MetricTarget entity.
func MetricTargetFromEntity(mt *entity.MetricTarget) *MetricTargetModel {
	return &MetricTargetModel{
		ID:                     mt.ID,
		TargetID:               mt.TargetID,
		MetricID:               mt.MetricID,
		BaselineYear:           mt.BaselineYear,
		BaselineValue:          mt.BaselineValue,
		BaselineEmissions:      mt.BaselineEmissions,
		TargetYear:             mt.TargetYear,
		TargetValue:            mt.TargetValue,
		TargetEmissions:        mt.TargetEmissions,
		ReductionPercent:       mt.ReductionPercent,
		StrategyType:           string(mt.StrategyType),
		BaselineEmissionFactor: mt.BaselineEmissionFactor,
		TargetEmissionFactor:   mt.TargetEmissionFactor,
		Status:                 string(mt.Status),
		ConfidenceLevel:        string(mt.ConfidenceLevel),
		Notes:                  mt.Notes,
		CreatedBy:              mt.CreatedBy,
		CreatedAt:              mt.CreatedAt,
		UpdatedAt:              mt.UpdatedAt,
	}
}
