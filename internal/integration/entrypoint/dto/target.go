// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// CreateTargetRequest represents the request body for target creation.
type CreateTargetRequest struct {
	Name              string          `json:"name" binding:"required"`
	Description       string          `json:"description"`
	BaselineYear      int             `json:"baseline_year" binding:"required"`
	BaselineEmissions decimal.Decimal `json:"baseline_emissions"`
	TargetYear        int             `json:"target_year" binding:"required"`
	TargetEmissions   decimal.Decimal `json:"target_emissions"`
}

// TargetResponse represents a single reduction target in API responses.
type TargetResponse struct {
	ID                string          `json:"id"`
	OrganizationID    string          `json:"organization_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	BaselineYear      int             `json:"baseline_year"`
	BaselineEmissions decimal.Decimal `json:"baseline_emissions"`
	TargetYear        int             `json:"target_year"`
	TargetEmissions   decimal.Decimal `json:"target_emissions"`
	Status            string          `json:"status"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TargetDetailResponse represents a target with its current metric decomposition.
type TargetDetailResponse struct {
	TargetResponse
	MetricTargets []MetricTargetResponse `json:"metric_targets"`
}

// TargetListResponse represents the response for listing targets.
type TargetListResponse struct {
	Targets []TargetResponse `json:"targets"`
}

// MetricTargetResponse represents one metric decomposition entry.
type MetricTargetResponse struct {
	ID                     string          `json:"id"`
	TargetID               string          `json:"target_id"`
	MetricID               string          `json:"metric_id"`
	BaselineYear           int             `json:"baseline_year"`
	BaselineValue          decimal.Decimal `json:"baseline_value"`
	BaselineEmissions      decimal.Decimal `json:"baseline_emissions"`
	TargetYear             int             `json:"target_year"`
	TargetValue            decimal.Decimal `json:"target_value"`
	TargetEmissions        decimal.Decimal `json:"target_emissions"`
	ReductionPercent       decimal.Decimal `json:"reduction_percent"`
	StrategyType           string          `json:"strategy_type"`
	BaselineEmissionFactor decimal.Decimal `json:"baseline_emission_factor"`
	TargetEmissionFactor   decimal.Decimal `json:"target_emission_factor"`
	Status                 string          `json:"status"`
	ConfidenceLevel        string          `json:"confidence_level"`
	Notes                  string          `json:"notes,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// ToTargetResponse converts a domain Target entity to a TargetResponse DTO.
func ToTargetResponse(t *entity.Target) TargetResponse {
	return TargetResponse{
		ID:                t.ID.String(),
		OrganizationID:    t.OrganizationID.String(),
		Name:              t.Name,
		Description:       t.Description,
		BaselineYear:      t.BaselineYear,
		BaselineEmissions: t.BaselineEmissions,
		TargetYear:        t.TargetYear,
		TargetEmissions:   t.TargetEmissions,
		Status:            string(t.Status),
		Version:           t.Version,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToMetricTargetResponse converts a domain MetricTarget entity to a
// MetricTargetResponse DTO.
func ToMetricTargetResponse(mt *entity.MetricTarget) MetricTargetResponse {
	return MetricTargetResponse{
		ID:                     mt.ID.String(),
		TargetID:               mt.TargetID.String(),
		MetricID:               mt.MetricID.String(),
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
		CreatedAt:              mt.CreatedAt,
		UpdatedAt:              mt.UpdatedAt,
	}
}

// ToTargetDetailResponse converts a target and its decomposition to a
// TargetDetailResponse DTO.
func ToTargetDetailResponse(t *entity.Target, metricTargets []*entity.MetricTarget) TargetDetailResponse {
	mts := make([]MetricTargetResponse, len(metricTargets))
	for i, mt := range metricTargets {
		mts[i] = ToMetricTargetResponse(mt)
	}
	return TargetDetailResponse{
		TargetResponse: ToTargetResponse(t),
		MetricTargets:  mts,
	}
}

// ToTargetListResponse converts a list of targets to a TargetListResponse.
func ToTargetListResponse(targets []*entity.Target) TargetListResponse {
	responses := make([]TargetResponse, len(targets))
	for i, t := range targets {
		responses[i] = ToTargetResponse(t)
	}
	return TargetListResponse{
		Targets: responses,
	}
}
