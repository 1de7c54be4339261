// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MetricTargetSnapshot is a flat, serializable copy of one MetricTarget's
// scalar state at the moment a replan was applied. IDs are preserved so a
// rollback can re-insert rows under their original identifiers.
type MetricTargetSnapshot struct {
	ID                     uuid.UUID       `json:"id"`
	MetricID               uuid.UUID       `json:"metric_id"`
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
	CreatedBy              uuid.UUID       `json:"created_by"`
	CreatedAt              time.Time       `json:"created_at"`
}

// InitiativeSnapshot is a flat, serializable copy of one Initiative's state
// at the moment a replan was applied.
type InitiativeSnapshot struct {
	ID                        uuid.UUID        `json:"id"`
	MetricTargetID            uuid.UUID        `json:"metric_target_id"`
	Name                      string           `json:"name"`
	Description               string           `json:"description,omitempty"`
	InitiativeType            string           `json:"initiative_type"`
	EstimatedReductionTCO2e   decimal.Decimal  `json:"estimated_reduction_tco2e"`
	EstimatedReductionPercent decimal.Decimal  `json:"estimated_reduction_percent"`
	CapitalCost               decimal.Decimal  `json:"capital_cost"`
	AnnualOperatingCost       decimal.Decimal  `json:"annual_operating_cost"`
	AnnualSavings             decimal.Decimal  `json:"annual_savings"`
	PaybackYears              *decimal.Decimal `json:"payback_years,omitempty"`
	StartDate                 *time.Time       `json:"start_date,omitempty"`
	CompletionDate            *time.Time       `json:"completion_date,omitempty"`
	ImplementationStatus      string           `json:"implementation_status"`
	ConfidenceLevel           string           `json:"confidence_level"`
	RiskLevel                 string           `json:"risk_level"`
	CreatedBy                 uuid.UUID        `json:"created_by"`
	CreatedAt                 time.Time        `json:"created_at"`
}

// DecompositionSnapshot bundles the pre-replan metric target and initiative
// state captured by a history record. Monthly breakdowns are intentionally
// not part of the snapshot; a rolled-back target carries no monthly plan
// until one is re-applied.
type DecompositionSnapshot struct {
	MetricTargets []MetricTargetSnapshot `json:"metric_targets"`
	Initiatives   []InitiativeSnapshot   `json:"initiatives"`
}
