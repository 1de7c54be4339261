// Package replanning contains the target replanning and rollback use cases.
package replanning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/domain/valueobject"
)

// MonthlyTargetInput represents one submitted monthly breakdown entry.
type MonthlyTargetInput struct {
	Year                  int
	Month                 int
	PlannedValue          decimal.Decimal
	PlannedEmissions      decimal.Decimal
	PlannedEmissionFactor decimal.Decimal
}

// InitiativeInput represents one submitted reduction initiative.
type InitiativeInput struct {
	Name                      string
	Description               string
	InitiativeType            entity.InitiativeType
	EstimatedReductionTCO2e   decimal.Decimal
	EstimatedReductionPercent decimal.Decimal
	CapitalCost               decimal.Decimal
	AnnualOperatingCost       decimal.Decimal
	AnnualSavings             decimal.Decimal
	PaybackYears              *decimal.Decimal
	StartDate                 *time.Time
	CompletionDate            *time.Time
	ImplementationStatus      entity.ImplementationStatus
	ConfidenceLevel           entity.ConfidenceLevel
	RiskLevel                 entity.RiskLevel
}

// MetricTargetInput represents one submitted metric decomposition entry.
type MetricTargetInput struct {
	MetricID               uuid.UUID
	BaselineYear           int
	BaselineValue          decimal.Decimal
	BaselineEmissions      decimal.Decimal
	TargetYear             int
	TargetValue            decimal.Decimal
	TargetEmissions        decimal.Decimal
	ReductionPercent       decimal.Decimal
	StrategyType           entity.StrategyType
	BaselineEmissionFactor decimal.Decimal
	TargetEmissionFactor   decimal.Decimal
	ConfidenceLevel        entity.ConfidenceLevel
	Notes                  string
	MonthlyTargets         []MonthlyTargetInput
	Initiatives            []InitiativeInput
}

// ApplyReplanningInput represents the input for applying a replan.
type ApplyReplanningInput struct {
	OrganizationID  uuid.UUID
	TargetID        uuid.UUID
	MetricTargets   []MetricTargetInput
	Strategy        string
	Trigger         entity.ReplanTrigger
	ActorID         uuid.UUID
	Notes           string
	ExpectedVersion *int64 // optional optimistic guard; nil means "current"
}

// ReplanSummary summarizes what a replan changed.
type ReplanSummary struct {
	PreviousTarget       decimal.Decimal
	NewTarget            decimal.Decimal
	TargetYear           int
	MetricTargetsCreated int
	InitiativesCreated   int
	TotalInvestment      decimal.Decimal
}

// ApplyReplanningOutput represents the output of a successful replan.
type ApplyReplanningOutput struct {
	HistoryID uuid.UUID
	Summary   ReplanSummary
}

// ApplyReplanningUseCase orchestrates the atomic replacement of a target's
// metric decomposition: snapshot, delete-and-rebuild, history record.
type ApplyReplanningUseCase struct {
	targetRepo       adapter.TargetRepository
	metricRepo       adapter.MetricRepository
	metricTargetRepo adapter.MetricTargetRepository
	initiativeRepo   adapter.InitiativeRepository
	replanRepo       adapter.ReplanningRepository
	lock             adapter.TargetLock
	notifier         adapter.ReplanNotifier
	notifyEmail      string
	notifyName       string
}

// NewApplyReplanningUseCase creates a new ApplyReplanningUseCase instance.
// The notifier is optional; an empty notifyEmail disables notifications.
func NewApplyReplanningUseCase(
	targetRepo adapter.TargetRepository,
	metricRepo adapter.MetricRepository,
	metricTargetRepo adapter.MetricTargetRepository,
	initiativeRepo adapter.InitiativeRepository,
	replanRepo adapter.ReplanningRepository,
	lock adapter.TargetLock,
	notifier adapter.ReplanNotifier,
	notifyEmail, notifyName string,
) *ApplyReplanningUseCase {
	return &ApplyReplanningUseCase{
		targetRepo:       targetRepo,
		metricRepo:       metricRepo,
		metricTargetRepo: metricTargetRepo,
		initiativeRepo:   initiativeRepo,
		replanRepo:       replanRepo,
		lock:             lock,
		notifier:         notifier,
		notifyEmail:      notifyEmail,
		notifyName:       notifyName,
	}
}

// Execute applies the replan. Any failure leaves the target's prior
// decomposition untouched and writes no history record.
func (uc *ApplyReplanningUseCase) Execute(ctx context.Context, input ApplyReplanningInput) (*ApplyReplanningOutput, error) {
	if err := validateReplanInput(input); err != nil {
		return nil, err
	}

	// Resolve the target within the calling organization.
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

	if input.ExpectedVersion != nil && *input.ExpectedVersion != target.Version {
		return nil, domainerror.NewReplanningError(
			domainerror.ErrCodeStaleTargetVersion,
			fmt.Sprintf("target is at version %d, replan was built against version %d", target.Version, *input.ExpectedVersion),
			domainerror.ErrStaleTargetVersion,
		)
	}

	// Resolve every referenced metric up front.
	metricIDs := make([]uuid.UUID, len(input.MetricTargets))
	for i, mt := range input.MetricTargets {
		metricIDs[i] = mt.MetricID
	}
	metrics, err := uc.metricRepo.FindByIDs(ctx, metricIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}
	for _, mt := range input.MetricTargets {
		if _, ok := metrics[mt.MetricID]; !ok {
			return nil, domainerror.NewTargetError(
				domainerror.ErrCodeTargetMetricNotFound,
				fmt.Sprintf("metric %s not found", mt.MetricID),
				domainerror.ErrMetricNotFound,
			)
		}
	}

	// Serialize replans per target across processes.
	acquired, err := uc.lock.Acquire(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire target lock: %w", err)
	}
	if !acquired {
		return nil, domainerror.NewReplanningError(
			domainerror.ErrCodeTargetLocked,
			"another replanning operation holds the lock for this target",
			domainerror.ErrTargetLocked,
		)
	}
	defer func() {
		if err := uc.lock.Release(ctx, target.ID); err != nil {
			slog.Warn("Failed to release target lock", "target_id", target.ID, "error", err)
		}
	}()

	// Snapshot the current decomposition before it is destroyed.
	snapshot, err := uc.snapshotDecomposition(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot current decomposition: %w", err)
	}

	previousTotal := target.TargetEmissions
	previousYear := target.TargetYear

	// Build the replacement rows and aggregate the summary figures.
	now := time.Now().UTC()
	newTargetYear := input.MetricTargets[0].TargetYear
	newTotal := decimal.Zero
	totalInvestment := decimal.Zero
	initiativesCreated := 0

	metricTargets := make([]*entity.MetricTarget, 0, len(input.MetricTargets))
	var monthlyTargets []*entity.MonthlyTarget
	var initiatives []*entity.Initiative
	metricCodes := make([]string, 0, len(input.MetricTargets))

	for _, mtInput := range input.MetricTargets {
		metricTarget := &entity.MetricTarget{
			ID:                     uuid.New(),
			TargetID:               target.ID,
			MetricID:               mtInput.MetricID,
			BaselineYear:           mtInput.BaselineYear,
			BaselineValue:          mtInput.BaselineValue,
			BaselineEmissions:      mtInput.BaselineEmissions,
			TargetYear:             mtInput.TargetYear,
			TargetValue:            mtInput.TargetValue,
			TargetEmissions:        mtInput.TargetEmissions,
			ReductionPercent:       mtInput.ReductionPercent,
			StrategyType:           mtInput.StrategyType,
			BaselineEmissionFactor: mtInput.BaselineEmissionFactor,
			TargetEmissionFactor:   mtInput.TargetEmissionFactor,
			Status:                 entity.MetricTargetStatusActive,
			ConfidenceLevel:        mtInput.ConfidenceLevel,
			Notes:                  mtInput.Notes,
			CreatedBy:              input.ActorID,
			CreatedAt:              now,
			UpdatedAt:              now,
		}
		metricTargets = append(metricTargets, metricTarget)
		metricCodes = append(metricCodes, metrics[mtInput.MetricID].Code)
		newTotal = newTotal.Add(mtInput.TargetEmissions)

		for _, monthInput := range mtInput.MonthlyTargets {
			monthlyTargets = append(monthlyTargets, &entity.MonthlyTarget{
				ID:                    uuid.New(),
				MetricTargetID:        metricTarget.ID,
				Year:                  monthInput.Year,
				Month:                 monthInput.Month,
				PlannedValue:          monthInput.PlannedValue,
				PlannedEmissions:      monthInput.PlannedEmissions,
				PlannedEmissionFactor: monthInput.PlannedEmissionFactor,
				Status:                entity.MonthlyTargetStatusPlanned,
				CreatedAt:             now,
				UpdatedAt:             now,
			})
		}

		for _, initInput := range mtInput.Initiatives {
			initiatives = append(initiatives, &entity.Initiative{
				ID:                        uuid.New(),
				TargetID:                  target.ID,
				MetricTargetID:            metricTarget.ID,
				Name:                      initInput.Name,
				Description:               initInput.Description,
				InitiativeType:            initInput.InitiativeType,
				EstimatedReductionTCO2e:   initInput.EstimatedReductionTCO2e,
				EstimatedReductionPercent: initInput.EstimatedReductionPercent,
				CapitalCost:               initInput.CapitalCost,
				AnnualOperatingCost:       initInput.AnnualOperatingCost,
				AnnualSavings:             initInput.AnnualSavings,
				PaybackYears:              initInput.PaybackYears,
				StartDate:                 initInput.StartDate,
				CompletionDate:            initInput.CompletionDate,
				ImplementationStatus:      initInput.ImplementationStatus,
				ConfidenceLevel:           initInput.ConfidenceLevel,
				RiskLevel:                 initInput.RiskLevel,
				CreatedBy:                 input.ActorID,
				CreatedAt:                 now,
				UpdatedAt:                 now,
			})
			initiativesCreated++
			totalInvestment = totalInvestment.Add(initInput.CapitalCost)
		}
	}

	history := &entity.ReplanningHistoryRecord{
		ID:                      uuid.New(),
		TargetID:                target.ID,
		TriggerReason:           input.Trigger,
		PreviousTargetEmissions: previousTotal,
		PreviousTargetYear:      previousYear,
		NewTargetEmissions:      newTotal,
		NewTargetYear:           newTargetYear,
		AllocationStrategy:      input.Strategy,
		MetricCodes:             metricCodes,
		MetricTargetsCreated:    len(metricTargets),
		InitiativesAdded:        initiativesCreated,
		TotalInvestment:         totalInvestment,
		Snapshot:                snapshot,
		ReplannedBy:             input.ActorID,
		Notes:                   input.Notes,
		CreatedAt:               now,
	}

	// Rewrite the target header alongside the decomposition.
	updated := *target
	updated.TargetEmissions = newTotal
	updated.TargetYear = newTargetYear
	updated.UpdatedAt = now

	err = uc.replanRepo.ApplyReplan(ctx, adapter.ReplanWrite{
		Target:          &updated,
		ExpectedVersion: target.Version,
		MetricTargets:   metricTargets,
		MonthlyTargets:  monthlyTargets,
		Initiatives:     initiatives,
		History:         history,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrStaleTargetVersion) {
			return nil, domainerror.NewReplanningError(
				domainerror.ErrCodeStaleTargetVersion,
				"target was modified concurrently",
				domainerror.ErrStaleTargetVersion,
			)
		}
		return nil, domainerror.NewReplanningError(
			domainerror.ErrCodeReplanTransactionFailed,
			"replan transaction failed",
			err,
		)
	}

	uc.notifyReplanApplied(ctx, target.Name, history)

	return &ApplyReplanningOutput{
		HistoryID: history.ID,
		Summary: ReplanSummary{
			PreviousTarget:       previousTotal,
			NewTarget:            newTotal,
			TargetYear:           newTargetYear,
			MetricTargetsCreated: len(metricTargets),
			InitiativesCreated:   initiativesCreated,
			TotalInvestment:      totalInvestment,
		},
	}, nil
}

// snapshotDecomposition captures the target's current metric targets and
// initiatives into a serializable snapshot.
func (uc *ApplyReplanningUseCase) snapshotDecomposition(ctx context.Context, targetID uuid.UUID) (valueobject.DecompositionSnapshot, error) {
	metricTargets, err := uc.metricTargetRepo.FindByTargetID(ctx, targetID)
	if err != nil {
		return valueobject.DecompositionSnapshot{}, err
	}
	initiatives, err := uc.initiativeRepo.FindByTargetID(ctx, targetID)
	if err != nil {
		return valueobject.DecompositionSnapshot{}, err
	}
	return NewDecompositionSnapshot(metricTargets, initiatives), nil
}

// notifyReplanApplied queues a best-effort notification. Failures are logged
// and never fail the already-committed replan.
func (uc *ApplyReplanningUseCase) notifyReplanApplied(ctx context.Context, targetName string, history *entity.ReplanningHistoryRecord) {
	if uc.notifier == nil || uc.notifyEmail == "" {
		return
	}
	err := uc.notifier.QueueReplanAppliedNotification(ctx, adapter.ReplanAppliedNotification{
		RecipientEmail:     uc.notifyEmail,
		RecipientName:      uc.notifyName,
		TargetID:           history.TargetID.String(),
		TargetName:         targetName,
		PreviousTarget:     history.PreviousTargetEmissions.String(),
		NewTarget:          history.NewTargetEmissions.String(),
		TargetYear:         history.NewTargetYear,
		MetricTargetsCount: history.MetricTargetsCreated,
		InitiativesCount:   history.InitiativesAdded,
		TotalInvestment:    history.TotalInvestment.String(),
		AllocationStrategy: history.AllocationStrategy,
		TriggerReason:      string(history.TriggerReason),
	})
	if err != nil {
		slog.Warn("Failed to queue replan notification", "target_id", history.TargetID, "error", err)
	}
}

// validateReplanInput checks the structural preconditions of a replan.
func validateReplanInput(input ApplyReplanningInput) error {
	if input.OrganizationID == uuid.Nil || input.TargetID == uuid.Nil || input.ActorID == uuid.Nil {
		return domainerror.NewReplanningError(
			domainerror.ErrCodeMissingReplanFields,
			"organization, target and actor identifiers are required",
			nil,
		)
	}
	if len(input.MetricTargets) == 0 {
		return domainerror.NewReplanningError(
			domainerror.ErrCodeEmptyDecomposition,
			"at least one metric target is required",
			domainerror.ErrEmptyDecomposition,
		)
	}
	if input.Trigger != entity.ReplanTriggerManual && input.Trigger != entity.ReplanTriggerAutomatic {
		return domainerror.NewReplanningError(
			domainerror.ErrCodeMissingReplanFields,
			"trigger must be 'manual' or 'automatic'",
			nil,
		)
	}

	targetYear := input.MetricTargets[0].TargetYear
	hundred := decimal.NewFromInt(100)
	for _, mt := range input.MetricTargets {
		if mt.MetricID == uuid.Nil {
			return domainerror.NewReplanningError(
				domainerror.ErrCodeMissingReplanFields,
				"every metric target must reference a metric",
				nil,
			)
		}
		if mt.TargetYear != targetYear {
			return domainerror.NewReplanningError(
				domainerror.ErrCodeMixedTargetYears,
				"all metric targets must share one target year",
				domainerror.ErrMixedTargetYears,
			)
		}
		if mt.ReductionPercent.IsNegative() || mt.ReductionPercent.GreaterThan(hundred) {
			return domainerror.NewReplanningError(
				domainerror.ErrCodeInvalidReductionPercent,
				"reduction percent must be between 0 and 100",
				domainerror.ErrInvalidReductionPercent,
			)
		}
		for _, month := range mt.MonthlyTargets {
			if month.Month < 1 || month.Month > 12 {
				return domainerror.NewReplanningError(
					domainerror.ErrCodeInvalidMonth,
					fmt.Sprintf("invalid month %d", month.Month),
					domainerror.ErrInvalidMonth,
				)
			}
		}
	}
	return nil
}
