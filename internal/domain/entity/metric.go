// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MetricScope represents the GHG Protocol scope a metric reports under.
type MetricScope string

const (
	MetricScope1 MetricScope = "scope_1"
	MetricScope2 MetricScope = "scope_2"
	MetricScope3 MetricScope = "scope_3"
)

// Metric represents one measurable emissions metric in the catalog
// (e.g. purchased electricity, fleet diesel, business travel).
type Metric struct {
	ID        uuid.UUID
	Name      string
	Code      string
	Scope     MetricScope
	Unit      string
	Category  string
	CreatedAt time.Time
}
