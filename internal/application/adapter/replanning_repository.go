// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// ReplanWrite carries the full set of rows a replan rewrites. The repository
// applies all of it in one transaction: the decomposition delete-and-rebuild,
// the target header update with its version bump, and the history insert.
type ReplanWrite struct {
	Target          *entity.Target // header already carrying the new totals/year
	ExpectedVersion int64          // version the caller read; guards against concurrent replans
	MetricTargets   []*entity.MetricTarget
	MonthlyTargets  []*entity.MonthlyTarget
	Initiatives     []*entity.Initiative
	History         *entity.ReplanningHistoryRecord
}

// RollbackWrite carries the rows a rollback restores from a history snapshot.
// Monthly targets are deliberately absent; snapshots do not capture them.
type RollbackWrite struct {
	Target        *entity.Target // header restored to the record's previous totals/year
	MetricTargets []*entity.MetricTarget
	Initiatives   []*entity.Initiative
	History       *entity.ReplanningHistoryRecord // with the rollback annotation applied
}

// ReplanningRepository defines the transactional write operations of the
// replanning engine. Either everything in a write lands or nothing does.
type ReplanningRepository interface {
	// ApplyReplan atomically replaces a target's decomposition and records
	// the history entry. Returns domainerror.ErrStaleTargetVersion when the
	// target's version no longer matches ExpectedVersion.
	ApplyReplan(ctx context.Context, write ReplanWrite) error

	// Rollback atomically restores a prior decomposition from a history
	// snapshot, preserving original row IDs, and annotates the record.
	Rollback(ctx context.Context, write RollbackWrite) error
}

// MetricTargetRepository defines read operations over a target's current
// metric decomposition.
type MetricTargetRepository interface {
	// FindByTargetID retrieves all metric targets for a target.
	FindByTargetID(ctx context.Context, targetID uuid.UUID) ([]*entity.MetricTarget, error)

	// FindByID retrieves a metric target by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MetricTarget, error)
}

// InitiativeRepository defines read operations over a target's initiatives.
type InitiativeRepository interface {
	// FindByTargetID retrieves all initiatives linked to a target.
	FindByTargetID(ctx context.Context, targetID uuid.UUID) ([]*entity.Initiative, error)
}

// ReplanningHistoryRepository defines read operations over replanning history.
// Records are only ever written inside a replan transaction.
type ReplanningHistoryRepository interface {
	// FindByID retrieves a history record, snapshot included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReplanningHistoryRecord, error)

	// FindByTargetID retrieves all history records for a target, newest first.
	FindByTargetID(ctx context.Context, targetID uuid.UUID) ([]*entity.ReplanningHistoryRecord, error)
}
