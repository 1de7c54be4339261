// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TargetStatus represents the lifecycle status of a reduction target.
type TargetStatus string

const (
	TargetStatusActive   TargetStatus = "active"
	TargetStatusAchieved TargetStatus = "achieved"
	TargetStatusArchived TargetStatus = "archived"
)

// Target represents an organization-scoped emissions-reduction goal.
// Its metric decomposition is only ever mutated through replanning.
type Target struct {
	ID                uuid.UUID
	OrganizationID    uuid.UUID
	Name              string
	Description       string
	BaselineYear      int
	BaselineEmissions decimal.Decimal // tCO2e in the baseline year
	TargetYear        int
	TargetEmissions   decimal.Decimal // tCO2e goal for the target year
	Status            TargetStatus
	Version           int64 // incremented on every replan/rollback
	CreatedBy         uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft-delete support; never hard-deleted while history references it
}

// NewTarget creates a new Target entity.
func NewTarget(
	organizationID uuid.UUID,
	name, description string,
	baselineYear int,
	baselineEmissions decimal.Decimal,
	targetYear int,
	targetEmissions decimal.Decimal,
	createdBy uuid.UUID,
) *Target {
	now := time.Now().UTC()

	return &Target{
		ID:                uuid.New(),
		OrganizationID:    organizationID,
		Name:              name,
		Description:       description,
		BaselineYear:      baselineYear,
		BaselineEmissions: baselineEmissions,
		TargetYear:        targetYear,
		TargetEmissions:   targetEmissions,
		Status:            TargetStatusActive,
		Version:           1,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// TargetWithDecomposition represents a target with its current metric targets.
type TargetWithDecomposition struct {
	Target        *Target
	MetricTargets []*MetricTarget
}
