// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/valueobject"
)

// ReplanTrigger represents what caused a replan to be applied.
type ReplanTrigger string

const (
	ReplanTriggerManual    ReplanTrigger = "manual"
	ReplanTriggerAutomatic ReplanTrigger = "automatic"
)

// ReplanningHistoryRecord is an immutable audit entry written once per replan.
// It holds a denormalized snapshot of the pre-replan decomposition, so it
// survives the destructive rewrite and supports rollback. The only permitted
// mutation is appending a rollback annotation.
type ReplanningHistoryRecord struct {
	ID                      uuid.UUID
	TargetID                uuid.UUID
	TriggerReason           ReplanTrigger
	PreviousTargetEmissions decimal.Decimal
	PreviousTargetYear      int
	NewTargetEmissions      decimal.Decimal
	NewTargetYear           int
	AllocationStrategy      string
	MetricCodes             []string // codes of the metrics in the new decomposition
	MetricTargetsCreated    int
	InitiativesAdded        int
	TotalInvestment         decimal.Decimal
	Snapshot                valueobject.DecompositionSnapshot
	ReplannedBy             uuid.UUID
	Notes                   string
	RolledBackAt            *time.Time
	CreatedAt               time.Time
}

// MarkRolledBack appends the rollback annotation to the record's notes and
// stamps the rollback time.
func (r *ReplanningHistoryRecord) MarkRolledBack(at time.Time) {
	at = at.UTC()
	annotation := fmt.Sprintf("[ROLLED BACK %s]", at.Format(time.RFC3339))
	if r.Notes == "" {
		r.Notes = annotation
	} else {
		r.Notes = r.Notes + " " + annotation
	}
	r.RolledBackAt = &at
}
