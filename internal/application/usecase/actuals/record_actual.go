// Package actuals contains the monthly actuals recording use case.
package actuals

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// RecordActualInput represents the input for recording measured values.
type RecordActualInput struct {
	MetricTargetID  uuid.UUID
	Year            int
	Month           int
	ActualValue     decimal.Decimal
	ActualEmissions decimal.Decimal
	ActualFactor    *decimal.Decimal // optional; nil leaves the stored factor unchanged
}

// RecordActualOutput represents the output of recording measured values.
type RecordActualOutput struct {
	MonthlyTarget *entity.MonthlyTarget
}

// RecordActualUseCase writes measured values onto one monthly target cell and
// marks it completed. Re-invoking with identical inputs converges to the same
// final state.
type RecordActualUseCase struct {
	monthlyRepo adapter.MonthlyTargetRepository
}

// NewRecordActualUseCase creates a new RecordActualUseCase instance.
func NewRecordActualUseCase(monthlyRepo adapter.MonthlyTargetRepository) *RecordActualUseCase {
	return &RecordActualUseCase{
		monthlyRepo: monthlyRepo,
	}
}

// Execute records the actuals.
func (uc *RecordActualUseCase) Execute(ctx context.Context, input RecordActualInput) (*RecordActualOutput, error) {
	if input.MetricTargetID == uuid.Nil {
		return nil, domainerror.NewReplanningError(
			domainerror.ErrCodeMissingReplanFields,
			"metric target identifier is required",
			nil,
		)
	}
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReplanningError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("invalid month %d", input.Month),
			domainerror.ErrInvalidMonth,
		)
	}

	monthlyTarget, err := uc.monthlyRepo.FindByMetricTargetPeriod(ctx, input.MetricTargetID, input.Year, input.Month)
	if err != nil {
		if errors.Is(err, domainerror.ErrMonthlyTargetNotFound) {
			return nil, domainerror.NewReplanningError(
				domainerror.ErrCodeMonthlyTargetNotFound,
				fmt.Sprintf("no monthly target for %d-%02d", input.Year, input.Month),
				domainerror.ErrMonthlyTargetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load monthly target: %w", err)
	}

	monthlyTarget.RecordActual(input.ActualValue, input.ActualEmissions, input.ActualFactor)

	if err := uc.monthlyRepo.UpdateActuals(ctx, monthlyTarget); err != nil {
		return nil, fmt.Errorf("failed to update monthly target actuals: %w", err)
	}

	return &RecordActualOutput{
		MonthlyTarget: monthlyTarget,
	}, nil
}
