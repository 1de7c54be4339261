// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/usecase/replanning"
	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// MonthlyTargetRequest represents one submitted monthly breakdown entry.
type MonthlyTargetRequest struct {
	Year                  int             `json:"year" binding:"required"`
	Month                 int             `json:"month" binding:"required"`
	PlannedValue          decimal.Decimal `json:"planned_value"`
	PlannedEmissions      decimal.Decimal `json:"planned_emissions"`
	PlannedEmissionFactor decimal.Decimal `json:"planned_emission_factor"`
}

// InitiativeRequest represents one submitted reduction initiative.
type InitiativeRequest struct {
	Name                      string           `json:"name" binding:"required"`
	Description               string           `json:"description"`
	InitiativeType            string           `json:"initiative_type" binding:"required,oneof=capital_project operational_change procurement behavioral"`
	EstimatedReductionTCO2e   decimal.Decimal  `json:"estimated_reduction_tco2e"`
	EstimatedReductionPercent decimal.Decimal  `json:"estimated_reduction_percent"`
	CapitalCost               decimal.Decimal  `json:"capital_cost"`
	AnnualOperatingCost       decimal.Decimal  `json:"annual_operating_cost"`
	AnnualSavings             decimal.Decimal  `json:"annual_savings"`
	PaybackYears              *decimal.Decimal `json:"payback_years,omitempty"`
	StartDate                 *string          `json:"start_date,omitempty"`
	CompletionDate            *string          `json:"completion_date,omitempty"`
	ImplementationStatus      string           `json:"implementation_status" binding:"omitempty,oneof=proposed approved in_progress completed cancelled"`
	ConfidenceLevel           string           `json:"confidence_level" binding:"omitempty,oneof=high medium low"`
	RiskLevel                 string           `json:"risk_level" binding:"omitempty,oneof=low medium high"`
}

// MetricTargetRequest represents one submitted metric decomposition entry.
type MetricTargetRequest struct {
	MetricID               string                 `json:"metric_id" binding:"required,uuid"`
	BaselineYear           int                    `json:"baseline_year" binding:"required"`
	BaselineValue          decimal.Decimal        `json:"baseline_value"`
	BaselineEmissions      decimal.Decimal        `json:"baseline_emissions"`
	TargetYear             int                    `json:"target_year" binding:"required"`
	TargetValue            decimal.Decimal        `json:"target_value"`
	TargetEmissions        decimal.Decimal        `json:"target_emissions"`
	ReductionPercent       decimal.Decimal        `json:"reduction_percent"`
	StrategyType           string                 `json:"strategy_type" binding:"required,oneof=linear front_loaded back_loaded hybrid"`
	BaselineEmissionFactor decimal.Decimal        `json:"baseline_emission_factor"`
	TargetEmissionFactor   decimal.Decimal        `json:"target_emission_factor"`
	ConfidenceLevel        string                 `json:"confidence_level" binding:"omitempty,oneof=high medium low"`
	Notes                  string                 `json:"notes"`
	MonthlyTargets         []MonthlyTargetRequest `json:"monthly_targets"`
	Initiatives            []InitiativeRequest    `json:"initiatives"`
}

// ApplyReplanRequest represents the request body for applying a replan.
type ApplyReplanRequest struct {
	MetricTargets   []MetricTargetRequest `json:"metric_targets" binding:"required,min=1,dive"`
	Strategy        string                `json:"strategy"`
	Trigger         string                `json:"trigger" binding:"required,oneof=manual automatic"`
	Notes           string                `json:"notes"`
	ExpectedVersion *int64                `json:"expected_version,omitempty"`
}

// ReplanSummaryResponse summarizes what a replan changed.
type ReplanSummaryResponse struct {
	PreviousTarget       decimal.Decimal `json:"previous_target"`
	NewTarget            decimal.Decimal `json:"new_target"`
	TargetYear           int             `json:"target_year"`
	MetricTargetsCreated int             `json:"metric_targets_created"`
	InitiativesCreated   int             `json:"initiatives_created"`
	TotalInvestment      decimal.Decimal `json:"total_investment"`
}

// ApplyReplanResponse represents the response for a successful replan.
type ApplyReplanResponse struct {
	HistoryID string                `json:"history_id"`
	Summary   ReplanSummaryResponse `json:"summary"`
}

// HistoryRecordResponse represents one replanning history record.
type HistoryRecordResponse struct {
	ID                      string          `json:"id"`
	TargetID                string          `json:"target_id"`
	TriggerReason           string          `json:"trigger_reason"`
	PreviousTargetEmissions decimal.Decimal `json:"previous_target_emissions"`
	PreviousTargetYear      int             `json:"previous_target_year"`
	NewTargetEmissions      decimal.Decimal `json:"new_target_emissions"`
	NewTargetYear           int             `json:"new_target_year"`
	AllocationStrategy      string          `json:"allocation_strategy"`
	MetricCodes             []string        `json:"metric_codes"`
	MetricTargetsCreated    int             `json:"metric_targets_created"`
	InitiativesAdded        int             `json:"initiatives_added"`
	TotalInvestment         decimal.Decimal `json:"total_investment"`
	ReplannedBy             string          `json:"replanned_by"`
	Notes                   string          `json:"notes,omitempty"`
	RolledBackAt            *time.Time      `json:"rolled_back_at,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
}

// HistoryListResponse represents the response for listing replanning history.
type HistoryListResponse struct {
	Records []HistoryRecordResponse `json:"records"`
}

// RollbackResponse represents the response for a successful rollback.
type RollbackResponse struct {
	TargetID              string `json:"target_id"`
	MetricTargetsRestored int    `json:"metric_targets_restored"`
	InitiativesRestored   int    `json:"initiatives_restored"`
	Message               string `json:"message"`
}

// ToApplyReplanningInput converts an ApplyReplanRequest to a use case input.
// Metric IDs are validated by the binding layer before this runs.
func ToApplyReplanningInput(req ApplyReplanRequest, organizationID, targetID, actorID uuid.UUID) replanning.ApplyReplanningInput {
	metricTargets := make([]replanning.MetricTargetInput, len(req.MetricTargets))
	for i, mt := range req.MetricTargets {
		metricID, _ := uuid.Parse(mt.MetricID)

		monthlyTargets := make([]replanning.MonthlyTargetInput, len(mt.MonthlyTargets))
		for j, month := range mt.MonthlyTargets {
			monthlyTargets[j] = replanning.MonthlyTargetInput{
				Year:                  month.Year,
				Month:                 month.Month,
				PlannedValue:          month.PlannedValue,
				PlannedEmissions:      month.PlannedEmissions,
				PlannedEmissionFactor: month.PlannedEmissionFactor,
			}
		}

		initiatives := make([]replanning.InitiativeInput, len(mt.Initiatives))
		for j, init := range mt.Initiatives {
			initiatives[j] = replanning.InitiativeInput{
				Name:                      init.Name,
				Description:               init.Description,
				InitiativeType:            entity.InitiativeType(init.InitiativeType),
				EstimatedReductionTCO2e:   init.EstimatedReductionTCO2e,
				EstimatedReductionPercent: init.EstimatedReductionPercent,
				CapitalCost:               init.CapitalCost,
				AnnualOperatingCost:       init.AnnualOperatingCost,
				AnnualSavings:             init.AnnualSavings,
				PaybackYears:              init.PaybackYears,
				StartDate:                 parseDate(init.StartDate),
				CompletionDate:            parseDate(init.CompletionDate),
				ImplementationStatus:      implementationStatusOrDefault(init.ImplementationStatus),
				ConfidenceLevel:           confidenceLevelOrDefault(init.ConfidenceLevel),
				RiskLevel:                 riskLevelOrDefault(init.RiskLevel),
			}
		}

		metricTargets[i] = replanning.MetricTargetInput{
			MetricID:               metricID,
			BaselineYear:           mt.BaselineYear,
			BaselineValue:          mt.BaselineValue,
			BaselineEmissions:      mt.BaselineEmissions,
			TargetYear:             mt.TargetYear,
			TargetValue:            mt.TargetValue,
			TargetEmissions:        mt.TargetEmissions,
			ReductionPercent:       mt.ReductionPercent,
			StrategyType:           entity.StrategyType(mt.StrategyType),
			BaselineEmissionFactor: mt.BaselineEmissionFactor,
			TargetEmissionFactor:   mt.TargetEmissionFactor,
			ConfidenceLevel:        confidenceLevelOrDefault(mt.ConfidenceLevel),
			Notes:                  mt.Notes,
			MonthlyTargets:         monthlyTargets,
			Initiatives:            initiatives,
		}
	}

	return replanning.ApplyReplanningInput{
		OrganizationID:  organizationID,
		TargetID:        targetID,
		MetricTargets:   metricTargets,
		Strategy:        req.Strategy,
		Trigger:         entity.ReplanTrigger(req.Trigger),
		ActorID:         actorID,
		Notes:           req.Notes,
		ExpectedVersion: req.ExpectedVersion,
	}
}

// ToApplyReplanResponse converts a use case output to an ApplyReplanResponse.
func ToApplyReplanResponse(output *replanning.ApplyReplanningOutput) ApplyReplanResponse {
	return ApplyReplanResponse{
		HistoryID: output.HistoryID.String(),
		Summary: ReplanSummaryResponse{
			PreviousTarget:       output.Summary.PreviousTarget,
			NewTarget:            output.Summary.NewTarget,
			TargetYear:           output.Summary.TargetYear,
			MetricTargetsCreated: output.Summary.MetricTargetsCreated,
			InitiativesCreated:   output.Summary.InitiativesCreated,
			TotalInvestment:      output.Summary.TotalInvestment,
		},
	}
}

// ToHistoryRecordResponse converts a domain history record to its DTO.
func ToHistoryRecordResponse(r *entity.ReplanningHistoryRecord) HistoryRecordResponse {
	return HistoryRecordResponse{
		ID:                      r.ID.String(),
		TargetID:                r.TargetID.String(),
		TriggerReason:           string(r.TriggerReason),
		PreviousTargetEmissions: r.PreviousTargetEmissions,
		PreviousTargetYear:      r.PreviousTargetYear,
		NewTargetEmissions:      r.NewTargetEmissions,
		NewTargetYear:           r.NewTargetYear,
		AllocationStrategy:      r.AllocationStrategy,
		MetricCodes:             r.MetricCodes,
		MetricTargetsCreated:    r.MetricTargetsCreated,
		InitiativesAdded:        r.InitiativesAdded,
		TotalInvestment:         r.TotalInvestment,
		ReplannedBy:             r.ReplannedBy.String(),
		Notes:                   r.Notes,
		RolledBackAt:            r.RolledBackAt,
		CreatedAt:               r.CreatedAt,
	}
}

// ToHistoryListResponse converts history records to a HistoryListResponse.
func ToHistoryListResponse(records []*entity.ReplanningHistoryRecord) HistoryListResponse {
	responses := make([]HistoryRecordResponse, len(records))
	for i, r := range records {
		responses[i] = ToHistoryRecordResponse(r)
	}
	return HistoryListResponse{
		Records: responses,
	}
}

// parseDate parses an optional YYYY-MM-DD date string; invalid input is nil.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func implementationStatusOrDefault(s string) entity.ImplementationStatus {
	if s == "" {
		return entity.ImplementationStatusProposed
	}
	return entity.ImplementationStatus(s)
}

func confidenceLevelOrDefault(s string) entity.ConfidenceLevel {
	if s == "" {
		return entity.ConfidenceMedium
	}
	return entity.ConfidenceLevel(s)
}

func riskLevelOrDefault(s string) entity.RiskLevel {
	if s == "" {
		return entity.RiskMedium
	}
	return entity.RiskLevel(s)
}
