// Package replanning contains the target replanning and rollback use cases.
package replanning

import (
	"time"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/domain/entity"
	"github.com/carbon-tracker/backend/internal/domain/valueobject"
)

// NewDecompositionSnapshot flattens the current metric targets and initiatives
// into the serializable form stored on a history record.
func NewDecompositionSnapshot(metricTargets []*entity.MetricTarget, initiatives []*entity.Initiative) valueobject.DecompositionSnapshot {
	snapshot := valueobject.DecompositionSnapshot{
		MetricTargets: make([]valueobject.MetricTargetSnapshot, 0, len(metricTargets)),
		Initiatives:   make([]valueobject.InitiativeSnapshot, 0, len(initiatives)),
	}

	for _, mt := range metricTargets {
		snapshot.MetricTargets = append(snapshot.MetricTargets, valueobject.MetricTargetSnapshot{
			ID:                     mt.ID,
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
		})
	}

	for _, init := range initiatives {
		snapshot.Initiatives = append(snapshot.Initiatives, valueobject.InitiativeSnapshot{
			ID:                        init.ID,
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
		})
	}

	return snapshot
}

// restoreMetricTargets rebuilds metric target entities from a snapshot,
// preserving their original identifiers.
func restoreMetricTargets(targetID uuid.UUID, snapshot valueobject.DecompositionSnapshot, restoredAt time.Time) []*entity.MetricTarget {
	restored := make([]*entity.MetricTarget, 0, len(snapshot.MetricTargets))
	for _, s := range snapshot.MetricTargets {
		restored = append(restored, &entity.MetricTarget{
			ID:                     s.ID,
			TargetID:               targetID,
			MetricID:               s.MetricID,
			BaselineYear:           s.BaselineYear,
			BaselineValue:          s.BaselineValue,
			BaselineEmissions:      s.BaselineEmissions,
			TargetYear:             s.TargetYear,
			TargetValue:            s.TargetValue,
			TargetEmissions:        s.TargetEmissions,
			ReductionPercent:       s.ReductionPercent,
			StrategyType:           entity.StrategyType(s.StrategyType),
			BaselineEmissionFactor: s.BaselineEmissionFactor,
			TargetEmissionFactor:   s.TargetEmissionFactor,
			Status:                 entity.MetricTargetStatus(s.Status),
			ConfidenceLevel:        entity.ConfidenceLevel(s.ConfidenceLevel),
			Notes:                  s.Notes,
			CreatedBy:              s.CreatedBy,
			CreatedAt:              s.CreatedAt,
			UpdatedAt:              restoredAt,
		})
	}
	return restored
}

// restoreInitiatives rebuilds initiative entities from a snapshot, preserving
// their original identifiers.
func restoreInitiatives(targetID uuid.UUID, snapshot valueobject.DecompositionSnapshot, restoredAt time.Time) []*entity.Initiative {
	restored := make([]*entity.Initiative, 0, len(snapshot.Initiatives))
	for _, s := range snapshot.Initiatives {
		restored = append(restored, &entity.Initiative{
			ID:                        s.ID,
			TargetID:                  targetID,
			MetricTargetID:            s.MetricTargetID,
			Name:                      s.Name,
			Description:               s.Description,
			InitiativeType:            entity.InitiativeType(s.InitiativeType),
			EstimatedReductionTCO2e:   s.EstimatedReductionTCO2e,
			EstimatedReductionPercent: s.EstimatedReductionPercent,
			CapitalCost:               s.CapitalCost,
			AnnualOperatingCost:       s.AnnualOperatingCost,
			AnnualSavings:             s.AnnualSavings,
			PaybackYears:              s.PaybackYears,
			StartDate:                 s.StartDate,
			CompletionDate:            s.CompletionDate,
			ImplementationStatus:      entity.ImplementationStatus(s.ImplementationStatus),
			ConfidenceLevel:           entity.ConfidenceLevel(s.ConfidenceLevel),
			RiskLevel:                 entity.RiskLevel(s.RiskLevel),
			CreatedBy:                 s.CreatedBy,
			CreatedAt:                 s.CreatedAt,
			UpdatedAt:                 restoredAt,
		})
	}
	return restored
}
