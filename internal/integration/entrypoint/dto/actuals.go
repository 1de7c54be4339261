// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// RecordActualRequest represents the request body for recording monthly actuals.
type RecordActualRequest struct {
	Year            int              `json:"year" binding:"required"`
	Month           int              `json:"month" binding:"required,min=1,max=12"`
	ActualValue     decimal.Decimal  `json:"actual_value"`
	ActualEmissions decimal.Decimal  `json:"actual_emissions"`
	ActualFactor    *decimal.Decimal `json:"actual_emission_factor,omitempty"`
}

// MonthlyTargetResponse represents a single monthly target cell.
type MonthlyTargetResponse struct {
	ID                    string           `json:"id"`
	MetricTargetID        string           `json:"metric_target_id"`
	Year                  int              `json:"year"`
	Month                 int              `json:"month"`
	PlannedValue          decimal.Decimal  `json:"planned_value"`
	PlannedEmissions      decimal.Decimal  `json:"planned_emissions"`
	PlannedEmissionFactor decimal.Decimal  `json:"planned_emission_factor"`
	ActualValue           *decimal.Decimal `json:"actual_value,omitempty"`
	ActualEmissions       *decimal.Decimal `json:"actual_emissions,omitempty"`
	ActualEmissionFactor  *decimal.Decimal `json:"actual_emission_factor,omitempty"`
	Status                string           `json:"status"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// ToMonthlyTargetResponse converts a domain MonthlyTarget entity to its DTO.
func ToMonthlyTargetResponse(m *entity.MonthlyTarget) MonthlyTargetResponse {
	return MonthlyTargetResponse{
		ID:                    m.ID.String(),
		MetricTargetID:        m.MetricTargetID.String(),
		Year:                  m.Year,
		Month:                 m.Month,
		PlannedValue:          m.PlannedValue,
		PlannedEmissions:      m.PlannedEmissions,
		PlannedEmissionFactor: m.PlannedEmissionFactor,
		ActualValue:           m.ActualValue,
		ActualEmissions:       m.ActualEmissions,
		ActualEmissionFactor:  m.ActualEmissionFactor,
		Status:                string(m.Status),
		UpdatedAt:             m.UpdatedAt,
	}
}
