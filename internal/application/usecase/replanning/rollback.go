// Package replanning contains the target replanning and rollback use cases.
package replanning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// RollbackInput represents the input for rolling back a replan.
type RollbackInput struct {
	OrganizationID uuid.UUID
	HistoryID      uuid.UUID
	ActorID        uuid.UUID
}

// RollbackOutput represents the output of a successful rollback.
type RollbackOutput struct {
	TargetID              uuid.UUID
	MetricTargetsRestored int
	InitiativesRestored   int
	Message               string
}

// RollbackUseCase restores a target's metric decomposition from a recorded
// history snapshot. Monthly plans are not part of the snapshot and are not
// restored; the target carries no monthly breakdown until replanned again.
type RollbackUseCase struct {
	historyRepo adapter.ReplanningHistoryRepository
	targetRepo  adapter.TargetRepository
	replanRepo  adapter.ReplanningRepository
	lock        adapter.TargetLock
	notifier    adapter.ReplanNotifier
	notifyEmail string
	notifyName  string
}

// NewRollbackUseCase creates a new RollbackUseCase instance.
// The notifier is optional; an empty notifyEmail disables notifications.
func NewRollbackUseCase(
	historyRepo adapter.ReplanningHistoryRepository,
	targetRepo adapter.TargetRepository,
	replanRepo adapter.ReplanningRepository,
	lock adapter.TargetLock,
	notifier adapter.ReplanNotifier,
	notifyEmail, notifyName string,
) *RollbackUseCase {
	return &RollbackUseCase{
		historyRepo: historyRepo,
		targetRepo:  targetRepo,
		replanRepo:  replanRepo,
		lock:        lock,
		notifier:    notifier,
		notifyEmail: notifyEmail,
		notifyName:  notifyName,
	}
}

// Execute performs the rollback as one atomic transaction.
func (uc *RollbackUseCase) Execute(ctx context.Context, input RollbackInput) (*RollbackOutput, error) {
	if input.OrganizationID == uuid.Nil || input.HistoryID == uuid.Nil || input.ActorID == uuid.Nil {
		return nil, domainerror.NewReplanningError(
			domainerror.ErrCodeMissingReplanFields,
			"organization, history record and actor identifiers are required",
			nil,
		)
	}

	record, err := uc.historyRepo.FindByID(ctx, input.HistoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHistoryRecordNotFound) {
			return nil, domainerror.NewReplanningError(
				domainerror.ErrCodeHistoryRecordNotFound,
				"replanning history record not found",
				domainerror.ErrHistoryRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load history record: %w", err)
	}

	// Resolve the target within the calling organization. A record whose
	// target belongs to another tenant reads as not found.
	target, err := uc.targetRepo.FindByIDForOrganization(ctx, record.TargetID, input.OrganizationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTargetNotFound) {
			return nil, domainerror.NewTargetError(
				domainerror.ErrCodeTargetNotFound,
				"target referenced by history record not found for organization",
				domainerror.ErrTargetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load target: %w", err)
	}

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

	now := time.Now().UTC()
	metricTargets := restoreMetricTargets(target.ID, record.Snapshot, now)
	initiatives := restoreInitiatives(target.ID, record.Snapshot, now)

	// Restore the target header to the record's pre-replan totals.
	restored := *target
	restored.TargetEmissions = record.PreviousTargetEmissions
	restored.TargetYear = record.PreviousTargetYear
	restored.UpdatedAt = now

	annotated := *record
	annotated.MarkRolledBack(now)

	err = uc.replanRepo.Rollback(ctx, adapter.RollbackWrite{
		Target:        &restored,
		MetricTargets: metricTargets,
		Initiatives:   initiatives,
		History:       &annotated,
	})
	if err != nil {
		return nil, domainerror.NewReplanningError(
			domainerror.ErrCodeRollbackTransactionFailed,
			"rollback transaction failed",
			err,
		)
	}

	slog.Info("Replan rolled back",
		"history_id", record.ID,
		"target_id", target.ID,
		"metric_targets_restored", len(metricTargets),
		"initiatives_restored", len(initiatives),
		"actor_id", input.ActorID,
	)

	uc.notifyRolledBack(ctx, target.Name, &annotated)

	return &RollbackOutput{
		TargetID:              target.ID,
		MetricTargetsRestored: len(metricTargets),
		InitiativesRestored:   len(initiatives),
		Message: fmt.Sprintf(
			"restored %d metric targets and %d initiatives from snapshot; monthly plans are not restored and must be re-applied",
			len(metricTargets), len(initiatives),
		),
	}, nil
}

// notifyRolledBack queues a best-effort notification. Failures are logged and
// never fail the already-committed rollback.
func (uc *RollbackUseCase) notifyRolledBack(ctx context.Context, targetName string, record *entity.ReplanningHistoryRecord) {
	if uc.notifier == nil || uc.notifyEmail == "" {
		return
	}
	rolledBackAt := ""
	if record.RolledBackAt != nil {
		rolledBackAt = record.RolledBackAt.Format(time.RFC3339)
	}
	err := uc.notifier.QueueRollbackNotification(ctx, adapter.RollbackNotification{
		RecipientEmail: uc.notifyEmail,
		RecipientName:  uc.notifyName,
		TargetID:       record.TargetID.String(),
		TargetName:     targetName,
		RestoredTarget: record.PreviousTargetEmissions.String(),
		RolledBackAt:   rolledBackAt,
	})
	if err != nil {
		slog.Warn("Failed to queue rollback notification", "target_id", record.TargetID, "error", err)
	}
}
