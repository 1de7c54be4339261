// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// MonthlyTargetModel represents the monthly_targets table in the database.
type MonthlyTargetModel struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primaryKey"`
	MetricTargetID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_monthly_period,priority:1"`
	Year                  int              `gorm:"not null;index:idx_monthly_period,priority:2"`
	Month                 int              `gorm:"not null;index:idx_monthly_period,priority:3"`
	PlannedValue          decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	PlannedEmissions      decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	PlannedEmissionFactor decimal.Decimal  `gorm:"type:decimal(18,8);not null"`
	ActualValue           *decimal.Decimal `gorm:"type:decimal(18,4)"`
	ActualEmissions       *decimal.Decimal `gorm:"type:decimal(18,4)"`
	ActualEmissionFactor  *decimal.Decimal `gorm:"type:decimal(18,8)"`
	Status                string           `gorm:"type:varchar(20);not null;default:'planned'"`
	CreatedAt             time.Time        `gorm:"not null"`
	UpdatedAt             time.Time        `gorm:"not null"`

	// Cascade: destroying a metric target destroys its monthly rows.
	MetricTarget *MetricTargetModel `gorm:"foreignKey:MetricTargetID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the MonthlyTargetModel.
func (MonthlyTargetModel) TableName() string {
	return "monthly_targets"
}

// ToEntity converts a MonthlyTargetModel to a domain MonthlyTarget entity.
func (m *MonthlyTargetModel) ToEntity() *entity.MonthlyTarget {
	return &entity.MonthlyTarget{
		ID:                    m.ID,
		MetricTargetID:        m.MetricTargetID,
		Year:                  m.Year,
		Month:                 m.Month,
		PlannedValue:          m.PlannedValue,
		PlannedEmissions:      m.PlannedEmissions,
		PlannedEmissionFactor: m.PlannedEmissionFactor,
		ActualValue:           m.ActualValue,
		ActualEmissions:       m.ActualEmissions,
		ActualEmissionFactor:  m.ActualEmissionFactor,
		Status:                entity.MonthlyTargetStatus(m.Status),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// MonthlyTargetFromEntity creates a MonthlyTargetModel from a domain MonthlyTarget entity.
func MonthlyTargetFromEntity(mt *entity.MonthlyTarget) *MonthlyTargetModel {
	return &MonthlyTargetModel{
		ID:                    mt.ID,
		MetricTargetID:        mt.MetricTargetID,
		Year:                  mt.Year,
		Month:                 mt.Month,
		PlannedValue:          mt.PlannedValue,
		PlannedEmissions:      mt.PlannedEmissions,
		PlannedEmissionFactor: mt.PlannedEmissionFactor,
		ActualValue:           mt.ActualValue,
		ActualEmissions:       mt.ActualEmissions,
		ActualEmissionFactor:  mt.ActualEmissionFactor,
		Status:                string(mt.Status),
		CreatedAt:             mt.CreatedAt,
		UpdatedAt:             mt.UpdatedAt,
	}
}
