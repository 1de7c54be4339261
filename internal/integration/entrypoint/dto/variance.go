// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/valueobject"
)

// VarianceRowResponse represents one metric's planned-vs-actual performance.
type VarianceRowResponse struct {
	MetricName      string           `json:"metric_name"`
	MetricCode      string           `json:"metric_code"`
	Scope           string           `json:"scope"`
	PlannedYTD      decimal.Decimal  `json:"planned_ytd"`
	ActualYTD       decimal.Decimal  `json:"actual_ytd"`
	VarianceYTD     decimal.Decimal  `json:"variance_ytd"`
	VariancePercent *decimal.Decimal `json:"variance_percent,omitempty"`
	Status          string           `json:"status"`
	MonthsTracked   int              `json:"months_tracked"`
	MonthsPlanned   int              `json:"months_planned"`
}

// VarianceResponse represents the variance analysis for a target.
type VarianceResponse struct {
	TargetID string                `json:"target_id"`
	AsOf     string                `json:"as_of"`
	Rows     []VarianceRowResponse `json:"rows"`
}

// ToVarianceResponse converts variance rows to a VarianceResponse DTO.
func ToVarianceResponse(targetID, asOf string, rows []valueobject.VarianceRow) VarianceResponse {
	responses := make([]VarianceRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = VarianceRowResponse{
			MetricName:      row.MetricName,
			MetricCode:      row.MetricCode,
			Scope:           row.Scope,
			PlannedYTD:      row.PlannedYTD,
			ActualYTD:       row.ActualYTD,
			VarianceYTD:     row.VarianceYTD,
			VariancePercent: row.VariancePercent,
			Status:          string(row.Status),
			MonthsTracked:   row.MonthsTracked,
			MonthsPlanned:   row.MonthsPlanned,
		}
	}
	return VarianceResponse{
		TargetID: targetID,
		AsOf:     asOf,
		Rows:     responses,
	}
}
