// Package valueobject defines immutable value types shared across the domain.
package valueobject

import "github.com/shopspring/decimal"

// TrajectoryStatus classifies how a metric is tracking against its plan.
type TrajectoryStatus string

const (
	TrajectoryOnTrack  TrajectoryStatus = "on_track"
	TrajectoryAtRisk   TrajectoryStatus = "at_risk"
	TrajectoryOffTrack TrajectoryStatus = "off_track"
)

// Classification thresholds, expressed as fractions of planned YTD emissions.
var (
	onTrackThreshold = decimal.NewFromFloat(0.10)
	atRiskThreshold  = decimal.NewFromFloat(0.25)
)

// VarianceRow is one metric's planned-vs-actual performance over a period.
// VariancePercent is nil when there is no planned volume to compare against.
type VarianceRow struct {
	MetricName      string
	MetricCode      string
	Scope           string
	PlannedYTD      decimal.Decimal
	ActualYTD       decimal.Decimal
	VarianceYTD     decimal.Decimal // positive means actual exceeds plan (worse)
	VariancePercent *decimal.Decimal
	Status          TrajectoryStatus
	MonthsTracked   int // months with a measured actual
	MonthsPlanned   int // all months in the window
}

// ClassifyTrajectory classifies a variance against its planned volume.
// Thresholds are strict: a variance of exactly 10% of plan is at_risk, and
// exactly 25% is off_track. A metric with no planned volume and no actuals
// is on_track; any actual against a zero plan is off_track.
func ClassifyTrajectory(plannedYTD, varianceYTD decimal.Decimal) TrajectoryStatus {
	abs := varianceYTD.Abs()
	if plannedYTD.IsZero() {
		if abs.IsZero() {
			return TrajectoryOnTrack
		}
		return TrajectoryOffTrack
	}
	if abs.LessThan(plannedYTD.Mul(onTrackThreshold)) {
		return TrajectoryOnTrack
	}
	if abs.LessThan(plannedYTD.Mul(atRiskThreshold)) {
		return TrajectoryAtRisk
	}
	return TrajectoryOffTrack
}

// NewVariancePercent computes variance as a percentage of plan, returning nil
// when the planned volume is zero.
func NewVariancePercent(plannedYTD, varianceYTD decimal.Decimal) *decimal.Decimal {
	if plannedYTD.IsZero() {
		return nil
	}
	pct := varianceYTD.Div(plannedYTD).Mul(decimal.NewFromInt(100))
	return &pct
}
