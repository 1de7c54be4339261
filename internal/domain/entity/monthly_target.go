// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyTargetStatus represents the measurement status of a monthly target.
type MonthlyTargetStatus string

const (
	MonthlyTargetStatusPlanned   MonthlyTargetStatus = "planned"
	MonthlyTargetStatusCompleted MonthlyTargetStatus = "completed"
)

// MonthlyTarget is a single calendar month's planned (and later, actual)
// breakdown of one MetricTarget. Destroyed with its metric target on replan.
type MonthlyTarget struct {
	ID                    uuid.UUID
	MetricTargetID        uuid.UUID
	Year                  int
	Month                 int // 1-12
	PlannedValue          decimal.Decimal
	PlannedEmissions      decimal.Decimal
	PlannedEmissionFactor decimal.Decimal
	ActualValue           *decimal.Decimal // nil until measured
	ActualEmissions       *decimal.Decimal
	ActualEmissionFactor  *decimal.Decimal
	Status                MonthlyTargetStatus
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RecordActual writes measured values onto the monthly target and marks it
// completed. A nil factor leaves the stored actual factor unchanged.
func (m *MonthlyTarget) RecordActual(actualValue, actualEmissions decimal.Decimal, actualFactor *decimal.Decimal) {
	m.ActualValue = &actualValue
	m.ActualEmissions = &actualEmissions
	if actualFactor != nil {
		m.ActualEmissionFactor = actualFactor
	}
	m.Status = MonthlyTargetStatusCompleted
	m.UpdatedAt = time.Now().UTC()
}
