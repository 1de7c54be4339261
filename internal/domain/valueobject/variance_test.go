// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyTrajectory(t *testing.T) {
	tests := []struct {
		name     string
		planned  int64
		variance int64
		want     TrajectoryStatus
	}{
		{"no deviation", 1000, 0, TrajectoryOnTrack},
		{"small overshoot", 1000, 99, TrajectoryOnTrack},
		{"small undershoot", 1000, -99, TrajectoryOnTrack},
		{"exactly ten percent", 1000, 100, TrajectoryAtRisk},
		{"within at risk band", 1000, 249, TrajectoryAtRisk},
		{"negative within at risk band", 1000, -249, TrajectoryAtRisk},
		{"exactly twenty five percent", 1000, 250, TrajectoryOffTrack},
		{"large overshoot", 1000, 900, TrajectoryOffTrack},
		{"zero plan no actuals", 0, 0, TrajectoryOnTrack},
		{"zero plan with overshoot", 0, 5, TrajectoryOffTrack},
		{"zero plan with undershoot", 0, -5, TrajectoryOffTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTrajectory(decimal.NewFromInt(tt.planned), decimal.NewFromInt(tt.variance))
			if got != tt.want {
				t.Errorf("ClassifyTrajectory(%d, %d) = %s, want %s", tt.planned, tt.variance, got, tt.want)
			}
		})
	}
}

func TestNewVariancePercent(t *testing.T) {
	t.Run("computes percent of plan", func(t *testing.T) {
		pct := NewVariancePercent(decimal.NewFromInt(1000), decimal.NewFromInt(150))
		if pct == nil {
			t.Fatal("expected a percent value")
		}
		if !pct.Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected 15, got %s", pct)
		}
	})

	t.Run("negative variance yields negative percent", func(t *testing.T) {
		pct := NewVariancePercent(decimal.NewFromInt(800), decimal.NewFromInt(-200))
		if pct == nil {
			t.Fatal("expected a percent value")
		}
		if !pct.Equal(decimal.NewFromInt(-25)) {
			t.Errorf("expected -25, got %s", pct)
		}
	})

	t.Run("zero plan has no percent", func(t *testing.T) {
		if pct := NewVariancePercent(decimal.Zero, decimal.NewFromInt(10)); pct != nil {
			t.Errorf("expected nil, got %s", pct)
		}
	})
}
