// Package replanning contains the target replanning and rollback use cases.
package replanning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// fakeTargetRepository is an in-memory TargetRepository for use case tests.
type fakeTargetRepository struct {
	targets map[uuid.UUID]*entity.Target
}

func newFakeTargetRepository(targets ...*entity.Target) *fakeTargetRepository {
	repo := &fakeTargetRepository{targets: make(map[uuid.UUID]*entity.Target)}
	for _, target := range targets {
		repo.targets[target.ID] = target
	}
	return repo
}

func (f *fakeTargetRepository) Create(_ context.Context, target *entity.Target) error {
	f.targets[target.ID] = target
	return nil
}

func (f *fakeTargetRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Target, error) {
	target, ok := f.targets[id]
	if !ok {
		return nil, domainerror.ErrTargetNotFound
	}
	copied := *target
	return &copied, nil
}

func (f *fakeTargetRepository) FindByIDForOrganization(_ context.Context, id, organizationID uuid.UUID) (*entity.Target, error) {
	target, ok := f.targets[id]
	if !ok || target.OrganizationID != organizationID {
		return nil, domainerror.ErrTargetNotFound
	}
	copied := *target
	return &copied, nil
}

func (f *fakeTargetRepository) FindByOrganizationID(_ context.Context, organizationID uuid.UUID) ([]*entity.Target, error) {
	var result []*entity.Target
	for _, target := range f.targets {
		if target.OrganizationID == organizationID {
			copied := *target
			result = append(result, &copied)
		}
	}
	return result, nil
}

// fakeMetricRepository is an in-memory MetricRepository.
type fakeMetricRepository struct {
	metrics map[uuid.UUID]*entity.Metric
}

func newFakeMetricRepository(metrics ...*entity.Metric) *fakeMetricRepository {
	repo := &fakeMetricRepository{metrics: make(map[uuid.UUID]*entity.Metric)}
	for _, metric := range metrics {
		repo.metrics[metric.ID] = metric
	}
	return repo
}

func (f *fakeMetricRepository) FindAll(_ context.Context) ([]*entity.Metric, error) {
	var result []*entity.Metric
	for _, metric := range f.metrics {
		result = append(result, metric)
	}
	return result, nil
}

func (f *fakeMetricRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Metric, error) {
	metric, ok := f.metrics[id]
	if !ok {
		return nil, domainerror.ErrMetricNotFound
	}
	return metric, nil
}

func (f *fakeMetricRepository) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Metric, error) {
	result := make(map[uuid.UUID]*entity.Metric)
	for _, id := range ids {
		if metric, ok := f.metrics[id]; ok {
			result[id] = metric
		}
	}
	return result, nil
}

// fakeMetricTargetRepository serves a fixed decomposition.
type fakeMetricTargetRepository struct {
	metricTargets []*entity.MetricTarget
	err           error
}

func (f *fakeMetricTargetRepository) FindByTargetID(_ context.Context, _ uuid.UUID) ([]*entity.MetricTarget, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.metricTargets, nil
}

func (f *fakeMetricTargetRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.MetricTarget, error) {
	for _, mt := range f.metricTargets {
		if mt.ID == id {
			return mt, nil
		}
	}
	return nil, domainerror.ErrMetricTargetNotFound
}

// fakeInitiativeRepository serves a fixed initiative list.
type fakeInitiativeRepository struct {
	initiatives []*entity.Initiative
	err         error
}

func (f *fakeInitiativeRepository) FindByTargetID(_ context.Context, _ uuid.UUID) ([]*entity.Initiative, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.initiatives, nil
}

// fakeReplanningRepository records the writes it receives and can be primed
// to fail, standing in for a rolled-back transaction.
type fakeReplanningRepository struct {
	applyErr    error
	rollbackErr error

	appliedWrites  []adapter.ReplanWrite
	rollbackWrites []adapter.RollbackWrite
}

func (f *fakeReplanningRepository) ApplyReplan(_ context.Context, write adapter.ReplanWrite) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.appliedWrites = append(f.appliedWrites, write)
	return nil
}

func (f *fakeReplanningRepository) Rollback(_ context.Context, write adapter.RollbackWrite) error {
	if f.rollbackErr != nil {
		return f.rollbackErr
	}
	f.rollbackWrites = append(f.rollbackWrites, write)
	return nil
}

// fakeTargetLock controls lock availability per test.
type fakeTargetLock struct {
	available  bool
	acquireErr error
	acquired   int
	released   int
}

func (f *fakeTargetLock) Acquire(_ context.Context, _ uuid.UUID) (bool, error) {
	if f.acquireErr != nil {
		return false, f.acquireErr
	}
	if !f.available {
		return false, nil
	}
	f.acquired++
	return true, nil
}

func (f *fakeTargetLock) Release(_ context.Context, _ uuid.UUID) error {
	f.released++
	return nil
}

// fakeReplanNotifier records queued notifications.
type fakeReplanNotifier struct {
	applied   []adapter.ReplanAppliedNotification
	rollbacks []adapter.RollbackNotification
	err       error
}

func (f *fakeReplanNotifier) QueueReplanAppliedNotification(_ context.Context, input adapter.ReplanAppliedNotification) error {
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, input)
	return nil
}

func (f *fakeReplanNotifier) QueueRollbackNotification(_ context.Context, input adapter.RollbackNotification) error {
	if f.err != nil {
		return f.err
	}
	f.rollbacks = append(f.rollbacks, input)
	return nil
}

type applyFixture struct {
	useCase     *ApplyReplanningUseCase
	target      *entity.Target
	electricity *entity.Metric
	fleetDiesel *entity.Metric
	replanRepo  *fakeReplanningRepository
	lock        *fakeTargetLock
	notifier    *fakeReplanNotifier
	actorID     uuid.UUID

	metricTargetRepo *fakeMetricTargetRepository
	initiativeRepo   *fakeInitiativeRepository
}

func newApplyFixture() *applyFixture {
	organizationID := uuid.New()
	actorID := uuid.New()

	target := entity.NewTarget(
		organizationID,
		"Net Zero 2030",
		"Absolute reduction across operations",
		2023,
		decimal.NewFromInt(10000),
		2030,
		decimal.NewFromInt(7000),
		actorID,
	)

	electricity := &entity.Metric{
		ID:    uuid.New(),
		Name:  "Purchased Electricity",
		Code:  "purchased_electricity",
		Scope: entity.MetricScope2,
		Unit:  "kWh",
	}
	fleetDiesel := &entity.Metric{
		ID:    uuid.New(),
		Name:  "Fleet Diesel",
		Code:  "fleet_diesel",
		Scope: entity.MetricScope1,
		Unit:  "L",
	}

	replanRepo := &fakeReplanningRepository{}
	lock := &fakeTargetLock{available: true}
	notifier := &fakeReplanNotifier{}
	metricTargetRepo := &fakeMetricTargetRepository{}
	initiativeRepo := &fakeInitiativeRepository{}

	useCase := NewApplyReplanningUseCase(
		newFakeTargetRepository(target),
		newFakeMetricRepository(electricity, fleetDiesel),
		metricTargetRepo,
		initiativeRepo,
		replanRepo,
		lock,
		notifier,
		"sustainability@example.com",
		"Sustainability Team",
	)

	return &applyFixture{
		useCase:          useCase,
		target:           target,
		electricity:      electricity,
		fleetDiesel:      fleetDiesel,
		replanRepo:       replanRepo,
		lock:             lock,
		notifier:         notifier,
		actorID:          actorID,
		metricTargetRepo: metricTargetRepo,
		initiativeRepo:   initiativeRepo,
	}
}

func (f *applyFixture) validInput() ApplyReplanningInput {
	payback := decimal.NewFromFloat(3.5)
	return ApplyReplanningInput{
		OrganizationID: f.target.OrganizationID,
		TargetID:       f.target.ID,
		Strategy:       string(entity.StrategyHybrid),
		Trigger:        entity.ReplanTriggerManual,
		ActorID:        f.actorID,
		Notes:          "tightened per 2025 audit",
		MetricTargets: []MetricTargetInput{
			{
				MetricID:          f.electricity.ID,
				BaselineYear:      2023,
				BaselineValue:     decimal.NewFromInt(2000000),
				BaselineEmissions: decimal.NewFromInt(6000),
				TargetYear:        2030,
				TargetValue:       decimal.NewFromInt(1200000),
				TargetEmissions:   decimal.NewFromInt(3600),
				ReductionPercent:  decimal.NewFromInt(40),
				StrategyType:      entity.StrategyHybrid,
				ConfidenceLevel:   entity.ConfidenceHigh,
				MonthlyTargets: []MonthlyTargetInput{
					{Year: 2026, Month: 1, PlannedValue: decimal.NewFromInt(150000), PlannedEmissions: decimal.NewFromInt(450)},
					{Year: 2026, Month: 2, PlannedValue: decimal.NewFromInt(140000), PlannedEmissions: decimal.NewFromInt(420)},
				},
				Initiatives: []InitiativeInput{
					{
						Name:                    "Rooftop solar phase 2",
						InitiativeType:          entity.InitiativeTypeCapitalProject,
						EstimatedReductionTCO2e: decimal.NewFromInt(800),
						CapitalCost:             decimal.NewFromInt(250000),
						PaybackYears:            &payback,
						ImplementationStatus:    entity.ImplementationStatusApproved,
						ConfidenceLevel:         entity.ConfidenceHigh,
						RiskLevel:               entity.RiskLow,
					},
				},
			},
			{
				MetricID:          f.fleetDiesel.ID,
				BaselineYear:      2023,
				BaselineValue:     decimal.NewFromInt(90000),
				BaselineEmissions: decimal.NewFromInt(4000),
				TargetYear:        2030,
				TargetValue:       decimal.NewFromInt(54000),
				TargetEmissions:   decimal.NewFromInt(2400),
				ReductionPercent:  decimal.NewFromInt(40),
				StrategyType:      entity.StrategyHybrid,
				ConfidenceLevel:   entity.ConfidenceMedium,
				Initiatives: []InitiativeInput{
					{
						Name:                    "Fleet electrification pilot",
						InitiativeType:          entity.InitiativeTypeCapitalProject,
						EstimatedReductionTCO2e: decimal.NewFromInt(600),
						CapitalCost:             decimal.NewFromInt(400000),
						ImplementationStatus:    entity.ImplementationStatusProposed,
						ConfidenceLevel:         entity.ConfidenceMedium,
						RiskLevel:               entity.RiskMedium,
					},
				},
			},
		},
	}
}

func TestApplyReplanningUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("applies replan and summarizes changes", func(t *testing.T) {
		fixture := newApplyFixture()

		output, err := fixture.useCase.Execute(ctx, fixture.validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.HistoryID == uuid.Nil {
			t.Error("expected a history record identifier")
		}

		summary := output.Summary
		if !summary.PreviousTarget.Equal(decimal.NewFromInt(7000)) {
			t.Errorf("expected previous target 7000, got %s", summary.PreviousTarget)
		}
		if !summary.NewTarget.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("expected new target 6000, got %s", summary.NewTarget)
		}
		if summary.TargetYear != 2030 {
			t.Errorf("expected target year 2030, got %d", summary.TargetYear)
		}
		if summary.MetricTargetsCreated != 2 {
			t.Errorf("expected 2 metric targets created, got %d", summary.MetricTargetsCreated)
		}
		if summary.InitiativesCreated != 2 {
			t.Errorf("expected 2 initiatives created, got %d", summary.InitiativesCreated)
		}
		if !summary.TotalInvestment.Equal(decimal.NewFromInt(650000)) {
			t.Errorf("expected total investment 650000, got %s", summary.TotalInvestment)
		}

		if len(fixture.replanRepo.appliedWrites) != 1 {
			t.Fatalf("expected 1 repository write, got %d", len(fixture.replanRepo.appliedWrites))
		}
		write := fixture.replanRepo.appliedWrites[0]
		if write.ExpectedVersion != 1 {
			t.Errorf("expected version guard 1, got %d", write.ExpectedVersion)
		}
		if !write.Target.TargetEmissions.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("expected header rewritten to 6000, got %s", write.Target.TargetEmissions)
		}
		if len(write.MonthlyTargets) != 2 {
			t.Errorf("expected 2 monthly rows, got %d", len(write.MonthlyTargets))
		}
		if len(write.History.MetricCodes) != 2 {
			t.Errorf("expected 2 metric codes on history, got %d", len(write.History.MetricCodes))
		}

		if fixture.lock.released != 1 {
			t.Errorf("expected lock released once, got %d", fixture.lock.released)
		}
		if len(fixture.notifier.applied) != 1 {
			t.Errorf("expected 1 queued notification, got %d", len(fixture.notifier.applied))
		}
	})

	t.Run("snapshots the prior decomposition onto the history record", func(t *testing.T) {
		fixture := newApplyFixture()
		priorMetricTarget := &entity.MetricTarget{
			ID:              uuid.New(),
			TargetID:        fixture.target.ID,
			MetricID:        fixture.electricity.ID,
			TargetEmissions: decimal.NewFromInt(7000),
			StrategyType:    entity.StrategyLinear,
			Status:          entity.MetricTargetStatusActive,
			ConfidenceLevel: entity.ConfidenceMedium,
		}
		priorInitiative := &entity.Initiative{
			ID:             uuid.New(),
			TargetID:       fixture.target.ID,
			MetricTargetID: priorMetricTarget.ID,
			Name:           "LED retrofit",
			InitiativeType: entity.InitiativeTypeOperationalChange,
		}
		fixture.metricTargetRepo.metricTargets = []*entity.MetricTarget{priorMetricTarget}
		fixture.initiativeRepo.initiatives = []*entity.Initiative{priorInitiative}

		_, err := fixture.useCase.Execute(ctx, fixture.validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snapshot := fixture.replanRepo.appliedWrites[0].History.Snapshot
		if len(snapshot.MetricTargets) != 1 {
			t.Fatalf("expected 1 snapshot metric target, got %d", len(snapshot.MetricTargets))
		}
		if snapshot.MetricTargets[0].ID != priorMetricTarget.ID {
			t.Error("expected snapshot to preserve the original metric target ID")
		}
		if len(snapshot.Initiatives) != 1 || snapshot.Initiatives[0].ID != priorInitiative.ID {
			t.Error("expected snapshot to preserve the original initiative")
		}
	})

	t.Run("rejects a stale expected version before locking", func(t *testing.T) {
		fixture := newApplyFixture()
		input := fixture.validInput()
		stale := int64(7)
		input.ExpectedVersion = &stale

		_, err := fixture.useCase.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrStaleTargetVersion) {
			t.Fatalf("expected stale version error, got %v", err)
		}
		if fixture.lock.acquired != 0 {
			t.Error("expected no lock acquisition on a stale version")
		}
	})

	t.Run("maps repository version conflict to stale version error", func(t *testing.T) {
		fixture := newApplyFixture()
		fixture.replanRepo.applyErr = domainerror.ErrStaleTargetVersion

		_, err := fixture.useCase.Execute(ctx, fixture.validInput())
		var replanErr *domainerror.ReplanningError
		if !errors.As(err, &replanErr) {
			t.Fatalf("expected a replanning error, got %v", err)
		}
		if replanErr.Code != domainerror.ErrCodeStaleTargetVersion {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeStaleTargetVersion, replanErr.Code)
		}
	})

	t.Run("fails fast when another replan holds the lock", func(t *testing.T) {
		fixture := newApplyFixture()
		fixture.lock.available = false

		_, err := fixture.useCase.Execute(ctx, fixture.validInput())
		if !errors.Is(err, domainerror.ErrTargetLocked) {
			t.Fatalf("expected lock contention error, got %v", err)
		}
		if len(fixture.replanRepo.appliedWrites) != 0 {
			t.Error("expected no write while locked")
		}
	})

	t.Run("failed transaction leaves no summary and releases the lock", func(t *testing.T) {
		fixture := newApplyFixture()
		fixture.replanRepo.applyErr = errors.New("connection reset")

		output, err := fixture.useCase.Execute(ctx, fixture.validInput())
		if output != nil {
			t.Error("expected no output on transaction failure")
		}
		var replanErr *domainerror.ReplanningError
		if !errors.As(err, &replanErr) || replanErr.Code != domainerror.ErrCodeReplanTransactionFailed {
			t.Fatalf("expected transaction failure error, got %v", err)
		}
		if fixture.lock.released != 1 {
			t.Errorf("expected lock released on failure, got %d releases", fixture.lock.released)
		}
		if len(fixture.notifier.applied) != 0 {
			t.Error("expected no notification for a failed replan")
		}
	})

	t.Run("rejects a target from another organization", func(t *testing.T) {
		fixture := newApplyFixture()
		input := fixture.validInput()
		input.OrganizationID = uuid.New()

		_, err := fixture.useCase.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrTargetNotFound) {
			t.Fatalf("expected target not found, got %v", err)
		}
	})

	t.Run("rejects an unknown metric reference", func(t *testing.T) {
		fixture := newApplyFixture()
		input := fixture.validInput()
		input.MetricTargets[1].MetricID = uuid.New()

		_, err := fixture.useCase.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrMetricNotFound) {
			t.Fatalf("expected metric not found, got %v", err)
		}
	})

	t.Run("notification failure does not fail the committed replan", func(t *testing.T) {
		fixture := newApplyFixture()
		fixture.notifier.err = errors.New("queue unavailable")

		output, err := fixture.useCase.Execute(ctx, fixture.validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output == nil {
			t.Fatal("expected output despite notification failure")
		}
	})
}

func TestValidateReplanInput(t *testing.T) {
	base := func() ApplyReplanningInput {
		return ApplyReplanningInput{
			OrganizationID: uuid.New(),
			TargetID:       uuid.New(),
			ActorID:        uuid.New(),
			Trigger:        entity.ReplanTriggerManual,
			MetricTargets: []MetricTargetInput{
				{
					MetricID:         uuid.New(),
					TargetYear:       2030,
					ReductionPercent: decimal.NewFromInt(40),
				},
			},
		}
	}

	tests := []struct {
		name     string
		mutate   func(*ApplyReplanningInput)
		wantCode domainerror.ReplanningErrorCode
	}{
		{
			name:     "missing organization",
			mutate:   func(in *ApplyReplanningInput) { in.OrganizationID = uuid.Nil },
			wantCode: domainerror.ErrCodeMissingReplanFields,
		},
		{
			name:     "missing actor",
			mutate:   func(in *ApplyReplanningInput) { in.ActorID = uuid.Nil },
			wantCode: domainerror.ErrCodeMissingReplanFields,
		},
		{
			name:     "empty decomposition",
			mutate:   func(in *ApplyReplanningInput) { in.MetricTargets = nil },
			wantCode: domainerror.ErrCodeEmptyDecomposition,
		},
		{
			name:     "invalid trigger",
			mutate:   func(in *ApplyReplanningInput) { in.Trigger = "scheduled" },
			wantCode: domainerror.ErrCodeMissingReplanFields,
		},
		{
			name: "mixed target years",
			mutate: func(in *ApplyReplanningInput) {
				second := in.MetricTargets[0]
				second.MetricID = uuid.New()
				second.TargetYear = 2035
				in.MetricTargets = append(in.MetricTargets, second)
			},
			wantCode: domainerror.ErrCodeMixedTargetYears,
		},
		{
			name: "reduction percent above 100",
			mutate: func(in *ApplyReplanningInput) {
				in.MetricTargets[0].ReductionPercent = decimal.NewFromInt(101)
			},
			wantCode: domainerror.ErrCodeInvalidReductionPercent,
		},
		{
			name: "negative reduction percent",
			mutate: func(in *ApplyReplanningInput) {
				in.MetricTargets[0].ReductionPercent = decimal.NewFromInt(-1)
			},
			wantCode: domainerror.ErrCodeInvalidReductionPercent,
		},
		{
			name: "month out of range",
			mutate: func(in *ApplyReplanningInput) {
				in.MetricTargets[0].MonthlyTargets = []MonthlyTargetInput{{Year: 2026, Month: 13}}
			},
			wantCode: domainerror.ErrCodeInvalidMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base()
			tt.mutate(&input)

			err := validateReplanInput(input)
			var replanErr *domainerror.ReplanningError
			if !errors.As(err, &replanErr) {
				t.Fatalf("expected a replanning error, got %v", err)
			}
			if replanErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, replanErr.Code)
			}
		})
	}

	t.Run("valid input passes", func(t *testing.T) {
		input := base()
		input.MetricTargets[0].MonthlyTargets = []MonthlyTargetInput{{Year: 2026, Month: 12}}
		if err := validateReplanInput(input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNewDecompositionSnapshot_RoundTrip(t *testing.T) {
	targetID := uuid.New()
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	payback := decimal.NewFromFloat(2.5)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	metricTarget := &entity.MetricTarget{
		ID:               uuid.New(),
		TargetID:         targetID,
		MetricID:         uuid.New(),
		BaselineYear:     2023,
		BaselineValue:    decimal.NewFromInt(500),
		TargetYear:       2030,
		TargetValue:      decimal.NewFromInt(300),
		TargetEmissions:  decimal.NewFromInt(1200),
		ReductionPercent: decimal.NewFromInt(40),
		StrategyType:     entity.StrategyFrontLoaded,
		Status:           entity.MetricTargetStatusActive,
		ConfidenceLevel:  entity.ConfidenceHigh,
		Notes:            "audited baseline",
		CreatedBy:        uuid.New(),
		CreatedAt:        createdAt,
	}
	initiative := &entity.Initiative{
		ID:                      uuid.New(),
		TargetID:                targetID,
		MetricTargetID:          metricTarget.ID,
		Name:                    "Heat recovery",
		InitiativeType:          entity.InitiativeTypeCapitalProject,
		EstimatedReductionTCO2e: decimal.NewFromInt(150),
		CapitalCost:             decimal.NewFromInt(80000),
		PaybackYears:            &payback,
		StartDate:               &start,
		ImplementationStatus:    entity.ImplementationStatusInProgress,
		ConfidenceLevel:         entity.ConfidenceMedium,
		RiskLevel:               entity.RiskHigh,
		CreatedBy:               uuid.New(),
		CreatedAt:               createdAt,
	}

	snapshot := NewDecompositionSnapshot(
		[]*entity.MetricTarget{metricTarget},
		[]*entity.Initiative{initiative},
	)

	restoredAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	restoredTargets := restoreMetricTargets(targetID, snapshot, restoredAt)
	restoredInitiatives := restoreInitiatives(targetID, snapshot, restoredAt)

	if len(restoredTargets) != 1 {
		t.Fatalf("expected 1 restored metric target, got %d", len(restoredTargets))
	}
	restored := restoredTargets[0]
	if restored.ID != metricTarget.ID {
		t.Error("expected original metric target ID preserved through restore")
	}
	if restored.StrategyType != entity.StrategyFrontLoaded {
		t.Errorf("expected strategy front_loaded, got %s", restored.StrategyType)
	}
	if !restored.TargetEmissions.Equal(metricTarget.TargetEmissions) {
		t.Errorf("expected target emissions %s, got %s", metricTarget.TargetEmissions, restored.TargetEmissions)
	}
	if !restored.UpdatedAt.Equal(restoredAt) {
		t.Error("expected restore to stamp UpdatedAt")
	}

	if len(restoredInitiatives) != 1 {
		t.Fatalf("expected 1 restored initiative, got %d", len(restoredInitiatives))
	}
	restoredInit := restoredInitiatives[0]
	if restoredInit.ID != initiative.ID {
		t.Error("expected original initiative ID preserved through restore")
	}
	if restoredInit.PaybackYears == nil || !restoredInit.PaybackYears.Equal(payback) {
		t.Error("expected payback years preserved through restore")
	}
	if restoredInit.StartDate == nil || !restoredInit.StartDate.Equal(start) {
		t.Error("expected start date preserved through restore")
	}
	if restoredInit.RiskLevel != entity.RiskHigh {
		t.Errorf("expected risk high, got %s", restoredInit.RiskLevel)
	}
}
