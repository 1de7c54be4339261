// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StrategyType represents how a metric target's reduction trajectory is shaped.
type StrategyType string

const (
	StrategyLinear      StrategyType = "linear"
	StrategyFrontLoaded StrategyType = "front_loaded"
	StrategyBackLoaded  StrategyType = "back_loaded"
	StrategyHybrid      StrategyType = "hybrid"
)

// ConfidenceLevel represents how confident the planner is in an estimate.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// MetricTargetStatus represents the tracking status of a metric target.
type MetricTargetStatus string

const (
	MetricTargetStatusActive     MetricTargetStatus = "active"
	MetricTargetStatusSuperseded MetricTargetStatus = "superseded"
)

// MetricTarget decomposes a Target onto one measurable emissions metric.
// The full set for a target is destroyed and recreated on every replan;
// it is never independently edited outside a replan or an actuals update.
type MetricTarget struct {
	ID                     uuid.UUID
	TargetID               uuid.UUID
	MetricID               uuid.UUID
	BaselineYear           int
	BaselineValue          decimal.Decimal // activity value in the metric's unit
	BaselineEmissions      decimal.Decimal // tCO2e
	TargetYear             int
	TargetValue            decimal.Decimal
	TargetEmissions        decimal.Decimal
	ReductionPercent       decimal.Decimal
	StrategyType           StrategyType
	BaselineEmissionFactor decimal.Decimal // tCO2e per unit of activity
	TargetEmissionFactor   decimal.Decimal
	Status                 MetricTargetStatus
	ConfidenceLevel        ConfidenceLevel
	Notes                  string
	CreatedBy              uuid.UUID
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
