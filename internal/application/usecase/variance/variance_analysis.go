// Package variance contains the planned-vs-actual variance analysis use case.
package variance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/domain/valueobject"
)

// VarianceAnalysisInput represents the input for a variance analysis.
type VarianceAnalysisInput struct {
	OrganizationID uuid.UUID
	TargetID       uuid.UUID
	AsOfDate       time.Time
}

// VarianceAnalysisOutput represents the ordered per-metric variance rows.
type VarianceAnalysisOutput struct {
	Rows []valueobject.VarianceRow
}

// VarianceAnalysisUseCase aggregates planned vs. actual emissions per metric
// through the as-of date and classifies each metric's trajectory. Read-only.
type VarianceAnalysisUseCase struct {
	targetRepo       adapter.TargetRepository
	metricRepo       adapter.MetricRepository
	metricTargetRepo adapter.MetricTargetRepository
	monthlyRepo      adapter.MonthlyTargetRepository
}

// NewVarianceAnalysisUseCase creates a new VarianceAnalysisUseCase instance.
func NewVarianceAnalysisUseCase(
	targetRepo adapter.TargetRepository,
	metricRepo adapter.MetricRepository,
	metricTargetRepo adapter.MetricTargetRepository,
	monthlyRepo adapter.MonthlyTargetRepository,
) *VarianceAnalysisUseCase {
	return &VarianceAnalysisUseCase{
		targetRepo:       targetRepo,
		metricRepo:       metricRepo,
		metricTargetRepo: metricTargetRepo,
		monthlyRepo:      monthlyRepo,
	}
}

// Execute computes the variance rows, worst-performing metrics first.
func (uc *VarianceAnalysisUseCase) Execute(ctx context.Context, input VarianceAnalysisInput) (*VarianceAnalysisOutput, error) {
	target, err := uc.targetRepo.FindByIDForOrganization(ctx, input.TargetID, input.OrganizationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTargetNotFound) {
			return nil, domainerror.NewTargetError(
				domainerror.ErrCodeTargetNotFound,
				"target not found for organization",
				domainerror.ErrTargetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load target: %w", err)
	}

	metricTargets, err := uc.metricTargetRepo.FindByTargetID(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load metric targets: %w", err)
	}

	metricIDs := make([]uuid.UUID, len(metricTargets))
	for i, mt := range metricTargets {
		metricIDs[i] = mt.MetricID
	}
	metrics, err := uc.metricRepo.FindByIDs(ctx, metricIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}

	asOfYear, asOfMonth := input.AsOfDate.Year(), int(input.AsOfDate.Month())

	rows := make([]valueobject.VarianceRow, 0, len(metricTargets))
	for _, mt := range metricTargets {
		months, err := uc.monthlyRepo.FindThroughPeriod(ctx, mt.ID, asOfYear, asOfMonth)
		if err != nil {
			return nil, fmt.Errorf("failed to load monthly targets: %w", err)
		}

		plannedYTD := decimal.Zero
		actualYTD := decimal.Zero
		monthsTracked := 0
		for _, month := range months {
			plannedYTD = plannedYTD.Add(month.PlannedEmissions)
			if month.ActualEmissions != nil {
				actualYTD = actualYTD.Add(*month.ActualEmissions)
				monthsTracked++
			}
		}

		// Positive variance means actual exceeds plan, i.e. worse.
		varianceYTD := actualYTD.Sub(plannedYTD)

		row := valueobject.VarianceRow{
			PlannedYTD:      plannedYTD,
			ActualYTD:       actualYTD,
			VarianceYTD:     varianceYTD,
			VariancePercent: valueobject.NewVariancePercent(plannedYTD, varianceYTD),
			Status:          valueobject.ClassifyTrajectory(plannedYTD, varianceYTD),
			MonthsTracked:   monthsTracked,
			MonthsPlanned:   len(months),
		}
		if metric, ok := metrics[mt.MetricID]; ok {
			row.MetricName = metric.Name
			row.MetricCode = metric.Code
			row.Scope = string(metric.Scope)
		}
		rows = append(rows, row)
	}

	// Worst-performing metrics first; rows without a computable percent last.
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := rows[i].VariancePercent, rows[j].VariancePercent
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return pi.GreaterThan(*pj)
	})

	return &VarianceAnalysisOutput{Rows: rows}, nil
}
