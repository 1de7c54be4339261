// Package actuals contains the monthly actuals recording use case.
package actuals

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// fakeMonthlyTargetRepository stores monthly targets keyed by period.
type fakeMonthlyTargetRepository struct {
	cells     map[string]*entity.MonthlyTarget
	updateErr error
	updates   int
}

func periodKey(metricTargetID uuid.UUID, year, month int) string {
	return fmt.Sprintf("%s/%d-%02d", metricTargetID, year, month)
}

func newFakeMonthlyTargetRepository(cells ...*entity.MonthlyTarget) *fakeMonthlyTargetRepository {
	repo := &fakeMonthlyTargetRepository{cells: make(map[string]*entity.MonthlyTarget)}
	for _, cell := range cells {
		repo.cells[periodKey(cell.MetricTargetID, cell.Year, cell.Month)] = cell
	}
	return repo
}

func (f *fakeMonthlyTargetRepository) FindByMetricTargetPeriod(_ context.Context, metricTargetID uuid.UUID, year, month int) (*entity.MonthlyTarget, error) {
	cell, ok := f.cells[periodKey(metricTargetID, year, month)]
	if !ok {
		return nil, domainerror.ErrMonthlyTargetNotFound
	}
	copied := *cell
	return &copied, nil
}

func (f *fakeMonthlyTargetRepository) FindByMetricTargetID(_ context.Context, metricTargetID uuid.UUID) ([]*entity.MonthlyTarget, error) {
	var result []*entity.MonthlyTarget
	for _, cell := range f.cells {
		if cell.MetricTargetID == metricTargetID {
			copied := *cell
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeMonthlyTargetRepository) FindThroughPeriod(_ context.Context, metricTargetID uuid.UUID, year, month int) ([]*entity.MonthlyTarget, error) {
	var result []*entity.MonthlyTarget
	for _, cell := range f.cells {
		if cell.MetricTargetID != metricTargetID {
			continue
		}
		if cell.Year < year || (cell.Year == year && cell.Month <= month) {
			copied := *cell
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeMonthlyTargetRepository) UpdateActuals(_ context.Context, monthlyTarget *entity.MonthlyTarget) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	key := periodKey(monthlyTarget.MetricTargetID, monthlyTarget.Year, monthlyTarget.Month)
	if _, ok := f.cells[key]; !ok {
		return domainerror.ErrMonthlyTargetNotFound
	}
	copied := *monthlyTarget
	f.cells[key] = &copied
	f.updates++
	return nil
}

func TestRecordActualUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	metricTargetID := uuid.New()

	newCell := func() *entity.MonthlyTarget {
		return &entity.MonthlyTarget{
			ID:                    uuid.New(),
			MetricTargetID:        metricTargetID,
			Year:                  2026,
			Month:                 3,
			PlannedValue:          decimal.NewFromInt(150000),
			PlannedEmissions:      decimal.NewFromInt(450),
			PlannedEmissionFactor: decimal.NewFromFloat(0.003),
			Status:                entity.MonthlyTargetStatusPlanned,
		}
	}

	t.Run("records actuals and completes the cell", func(t *testing.T) {
		repo := newFakeMonthlyTargetRepository(newCell())
		useCase := NewRecordActualUseCase(repo)

		factor := decimal.NewFromFloat(0.0031)
		output, err := useCase.Execute(ctx, RecordActualInput{
			MetricTargetID:  metricTargetID,
			Year:            2026,
			Month:           3,
			ActualValue:     decimal.NewFromInt(155000),
			ActualEmissions: decimal.NewFromInt(480),
			ActualFactor:    &factor,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cell := output.MonthlyTarget
		if cell.Status != entity.MonthlyTargetStatusCompleted {
			t.Errorf("expected status completed, got %s", cell.Status)
		}
		if cell.ActualValue == nil || !cell.ActualValue.Equal(decimal.NewFromInt(155000)) {
			t.Error("expected actual value 155000")
		}
		if cell.ActualEmissions == nil || !cell.ActualEmissions.Equal(decimal.NewFromInt(480)) {
			t.Error("expected actual emissions 480")
		}
		if cell.ActualEmissionFactor == nil || !cell.ActualEmissionFactor.Equal(factor) {
			t.Error("expected actual emission factor recorded")
		}
		if !cell.PlannedEmissions.Equal(decimal.NewFromInt(450)) {
			t.Error("expected planned emissions untouched")
		}
		if repo.updates != 1 {
			t.Errorf("expected 1 repository update, got %d", repo.updates)
		}
	})

	t.Run("nil factor leaves stored factor unchanged", func(t *testing.T) {
		stored := decimal.NewFromFloat(0.0029)
		cell := newCell()
		cell.ActualEmissionFactor = &stored
		repo := newFakeMonthlyTargetRepository(cell)
		useCase := NewRecordActualUseCase(repo)

		output, err := useCase.Execute(ctx, RecordActualInput{
			MetricTargetID:  metricTargetID,
			Year:            2026,
			Month:           3,
			ActualValue:     decimal.NewFromInt(140000),
			ActualEmissions: decimal.NewFromInt(430),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.MonthlyTarget.ActualEmissionFactor == nil || !output.MonthlyTarget.ActualEmissionFactor.Equal(stored) {
			t.Error("expected stored factor preserved when none submitted")
		}
	})

	t.Run("re-recording converges to the same state", func(t *testing.T) {
		repo := newFakeMonthlyTargetRepository(newCell())
		useCase := NewRecordActualUseCase(repo)

		input := RecordActualInput{
			MetricTargetID:  metricTargetID,
			Year:            2026,
			Month:           3,
			ActualValue:     decimal.NewFromInt(155000),
			ActualEmissions: decimal.NewFromInt(480),
		}

		first, err := useCase.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error on first record: %v", err)
		}
		second, err := useCase.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error on second record: %v", err)
		}

		if second.MonthlyTarget.Status != entity.MonthlyTargetStatusCompleted {
			t.Error("expected cell still completed after re-recording")
		}
		if !second.MonthlyTarget.ActualEmissions.Equal(*first.MonthlyTarget.ActualEmissions) {
			t.Error("expected identical actuals after re-recording")
		}
		if repo.updates != 2 {
			t.Errorf("expected 2 repository updates, got %d", repo.updates)
		}
	})

	t.Run("corrections overwrite prior actuals", func(t *testing.T) {
		repo := newFakeMonthlyTargetRepository(newCell())
		useCase := NewRecordActualUseCase(repo)

		base := RecordActualInput{
			MetricTargetID:  metricTargetID,
			Year:            2026,
			Month:           3,
			ActualValue:     decimal.NewFromInt(155000),
			ActualEmissions: decimal.NewFromInt(480),
		}
		if _, err := useCase.Execute(ctx, base); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		corrected := base
		corrected.ActualEmissions = decimal.NewFromInt(465)
		output, err := useCase.Execute(ctx, corrected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.MonthlyTarget.ActualEmissions.Equal(decimal.NewFromInt(465)) {
			t.Errorf("expected corrected emissions 465, got %s", output.MonthlyTarget.ActualEmissions)
		}
	})

	invalidCases := []struct {
		name     string
		input    RecordActualInput
		wantCode domainerror.ReplanningErrorCode
	}{
		{
			name: "missing metric target identifier",
			input: RecordActualInput{
				Year:  2026,
				Month: 3,
			},
			wantCode: domainerror.ErrCodeMissingReplanFields,
		},
		{
			name: "month zero",
			input: RecordActualInput{
				MetricTargetID: metricTargetID,
				Year:           2026,
				Month:          0,
			},
			wantCode: domainerror.ErrCodeInvalidMonth,
		},
		{
			name: "month thirteen",
			input: RecordActualInput{
				MetricTargetID: metricTargetID,
				Year:           2026,
				Month:          13,
			},
			wantCode: domainerror.ErrCodeInvalidMonth,
		},
		{
			name: "no monthly target for the period",
			input: RecordActualInput{
				MetricTargetID: metricTargetID,
				Year:           2027,
				Month:          6,
			},
			wantCode: domainerror.ErrCodeMonthlyTargetNotFound,
		},
	}

	for _, tt := range invalidCases {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeMonthlyTargetRepository(newCell())
			useCase := NewRecordActualUseCase(repo)

			_, err := useCase.Execute(ctx, tt.input)
			var replanErr *domainerror.ReplanningError
			if !errors.As(err, &replanErr) {
				t.Fatalf("expected a replanning error, got %v", err)
			}
			if replanErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, replanErr.Code)
			}
		})
	}

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := newFakeMonthlyTargetRepository(newCell())
		repo.updateErr = errors.New("write timeout")
		useCase := NewRecordActualUseCase(repo)

		_, err := useCase.Execute(ctx, RecordActualInput{
			MetricTargetID:  metricTargetID,
			Year:            2026,
			Month:           3,
			ActualValue:     decimal.NewFromInt(1),
			ActualEmissions: decimal.NewFromInt(1),
		})
		if err == nil {
			t.Fatal("expected an error when the repository write fails")
		}
	})
}
