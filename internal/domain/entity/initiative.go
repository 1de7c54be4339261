// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitiativeType represents the kind of reduction action.
type InitiativeType string

const (
	InitiativeTypeCapitalProject    InitiativeType = "capital_project"
	InitiativeTypeOperationalChange InitiativeType = "operational_change"
	InitiativeTypeProcurement       InitiativeType = "procurement"
	InitiativeTypeBehavioral        InitiativeType = "behavioral"
)

// ImplementationStatus represents where an initiative is in its delivery.
type ImplementationStatus string

const (
	ImplementationStatusProposed   ImplementationStatus = "proposed"
	ImplementationStatusApproved   ImplementationStatus = "approved"
	ImplementationStatusInProgress ImplementationStatus = "in_progress"
	ImplementationStatusCompleted  ImplementationStatus = "completed"
	ImplementationStatusCancelled  ImplementationStatus = "cancelled"
)

// RiskLevel represents delivery risk for an initiative.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Initiative is a concrete reduction action attached to a MetricTarget and,
// transitively, to the owning Target. Destroyed and recreated alongside its
// metric target on replan.
type Initiative struct {
	ID                        uuid.UUID
	TargetID                  uuid.UUID
	MetricTargetID            uuid.UUID
	Name                      string
	Description               string
	InitiativeType            InitiativeType
	EstimatedReductionTCO2e   decimal.Decimal
	EstimatedReductionPercent decimal.Decimal
	CapitalCost               decimal.Decimal
	AnnualOperatingCost       decimal.Decimal
	AnnualSavings             decimal.Decimal
	PaybackYears              *decimal.Decimal
	StartDate                 *time.Time
	CompletionDate            *time.Time
	ImplementationStatus      ImplementationStatus
	ConfidenceLevel           ConfidenceLevel
	RiskLevel                 RiskLevel
	CreatedBy                 uuid.UUID
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
