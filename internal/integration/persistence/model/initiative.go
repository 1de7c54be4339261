// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// InitiativeModel represents the reduction_initiatives table in the database.
type InitiativeModel struct {
	ID                        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TargetID                  uuid.UUID        `gorm:"type:uuid;not null;index"`
	MetricTargetID            uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name                      string           `gorm:"type:varchar(255);not null"`
	Description               string           `gorm:"type:text"`
	InitiativeType            string           `gorm:"type:varchar(30);not null"`
	EstimatedReductionTCO2e   decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	EstimatedReductionPercent decimal.Decimal  `gorm:"type:decimal(7,4);not null"`
	CapitalCost               decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	AnnualOperatingCost       decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	AnnualSavings             decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	PaybackYears              *decimal.Decimal `gorm:"type:decimal(7,2)"`
	StartDate                 *time.Time       `gorm:"type:date"`
	CompletionDate            *time.Time       `gorm:"type:date"`
	ImplementationStatus      string           `gorm:"type:varchar(20);not null;default:'proposed'"`
	ConfidenceLevel           string           `gorm:"type:varchar(10);not null;default:'medium'"`
	RiskLevel                 string           `gorm:"type:varchar(10);not null;default:'medium'"`
	CreatedBy                 uuid.UUID        `gorm:"type:uuid;not null"`
	CreatedAt                 time.Time        `gorm:"not null"`
	UpdatedAt                 time.Time        `gorm:"not null"`

	// Cascade: destroying a metric target destroys its initiatives.
	MetricTarget *MetricTargetModel `gorm:"foreignKey:MetricTargetID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the InitiativeModel.
func (InitiativeModel) TableName() string {
	return "reduction_initiatives"
}

// ToEntity converts an InitiativeModel to a domain Initiative entity.
func (m *InitiativeModel) ToEntity() *entity.Initiative {
	return &entity.Initiative{
		ID:                        m.ID,
		TargetID:                  m.TargetID,
		MetricTargetID:            m.MetricTargetID,
		Name:                      m.Name,
		Description:               m.Description,
		InitiativeType:            entity.InitiativeType(m.InitiativeType),
		EstimatedReductionTCO2e:   m.EstimatedReductionTCO2e,
		EstimatedReductionPercent: m.EstimatedReductionPercent,
		CapitalCost:               m.CapitalCost,
		AnnualOperatingCost:       m.AnnualOperatingCost,
		AnnualSavings:             m.AnnualSavings,
		PaybackYears:              m.PaybackYears,
		StartDate:                 m.StartDate,
		CompletionDate:            m.CompletionDate,
		ImplementationStatus:      entity.ImplementationStatus(m.ImplementationStatus),
		ConfidenceLevel:           entity.ConfidenceLevel(m.ConfidenceLevel),
		RiskLevel:                 entity.RiskLevel(m.RiskLevel),
		CreatedBy:                 m.CreatedBy,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

// InitiativeFromEntity creates an InitiativeModel from a domain Initiative entity.
func InitiativeFromEntity(init *entity.Initiative) *InitiativeModel {
	return &InitiativeModel{
		ID:                        init.ID,
		TargetID:                  init.TargetID,
		MetricTargetID:            init.MetricTargetID,
		Name:                      init.Name,
		Description:               init.Description,
		InitiativeType:            string(init.InitiativeType),
		EstimatedReductionTCO2e:   init.EstimatedReductionTCO2e,
		EstimatedReductionPercent: init.EstimatedReductionPercent,
		CapitalCost:               init.CapitalCost,
		AnnualOperatingCost:       init.AnnualOperatingCost,
		AnnualSavings:             init.AnnualSavings,
		PaybackYears:              init.PaybackYears,
		StartDate:                 init.StartDate,
		CompletionDate:            init.CompletionDate,
		ImplementationStatus:      string(init.ImplementationStatus),
		ConfidenceLevel:           string(init.ConfidenceLevel),
		RiskLevel:                 string(init.RiskLevel),
		CreatedBy:                 init.CreatedBy,
		CreatedAt:                 init.CreatedAt,
		UpdatedAt:                 init.UpdatedAt,
	}
}
