// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/domain/valueobject"
	"github.com/carbon-tracker/backend/internal/integration/persistence/model"
)

// setupTestDB opens an in-memory database with the full schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.MetricModel{},
		&model.TargetModel{},
		&model.MetricTargetModel{},
		&model.MonthlyTargetModel{},
		&model.InitiativeModel{},
		&model.ReplanningHistoryModel{},
		&model.NotificationQueueModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTarget(t *testing.T, db *gorm.DB) *entity.Target {
	t.Helper()

	target := entity.NewTarget(
		uuid.New(),
		"Net Zero 2030",
		"Absolute reduction across operations",
		2023,
		decimal.NewFromInt(10000),
		2030,
		decimal.NewFromInt(7000),
		uuid.New(),
	)
	if err := NewTargetRepository(db).Create(context.Background(), target); err != nil {
		t.Fatalf("failed to seed target: %v", err)
	}
	return target
}

// newReplanWrite builds a minimal valid replan write against a target.
func newReplanWrite(target *entity.Target, expectedVersion int64) adapter.ReplanWrite {
	now := time.Now().UTC()
	actorID := target.CreatedBy

	metricTarget := &entity.MetricTarget{
		ID:                uuid.New(),
		TargetID:          target.ID,
		MetricID:          uuid.New(),
		BaselineYear:      2023,
		BaselineValue:     decimal.NewFromInt(2000000),
		BaselineEmissions: decimal.NewFromInt(6000),
		TargetYear:        2030,
		TargetValue:       decimal.NewFromInt(1200000),
		TargetEmissions:   decimal.NewFromInt(3600),
		ReductionPercent:  decimal.NewFromInt(40),
		StrategyType:      entity.StrategyLinear,
		Status:            entity.MetricTargetStatusActive,
		ConfidenceLevel:   entity.ConfidenceHigh,
		CreatedBy:         actorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	monthly := &entity.MonthlyTarget{
		ID:               uuid.New(),
		MetricTargetID:   metricTarget.ID,
		Year:             2026,
		Month:            1,
		PlannedValue:     decimal.NewFromInt(150000),
		PlannedEmissions: decimal.NewFromInt(450),
		Status:           entity.MonthlyTargetStatusPlanned,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	initiative := &entity.Initiative{
		ID:                      uuid.New(),
		TargetID:                target.ID,
		MetricTargetID:          metricTarget.ID,
		Name:                    "Rooftop solar phase 2",
		InitiativeType:          entity.InitiativeTypeCapitalProject,
		EstimatedReductionTCO2e: decimal.NewFromInt(800),
		CapitalCost:             decimal.NewFromInt(250000),
		ImplementationStatus:    entity.ImplementationStatusApproved,
		ConfidenceLevel:         entity.ConfidenceHigh,
		RiskLevel:               entity.RiskLow,
		CreatedBy:               actorID,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	updated := *target
	updated.TargetEmissions = decimal.NewFromInt(3600)
	updated.UpdatedAt = now

	history := &entity.ReplanningHistoryRecord{
		ID:                      uuid.New(),
		TargetID:                target.ID,
		TriggerReason:           entity.ReplanTriggerManual,
		PreviousTargetEmissions: target.TargetEmissions,
		PreviousTargetYear:      target.TargetYear,
		NewTargetEmissions:      decimal.NewFromInt(3600),
		NewTargetYear:           2030,
		AllocationStrategy:      string(entity.StrategyLinear),
		MetricCodes:             []string{"purchased_electricity"},
		MetricTargetsCreated:    1,
		InitiativesAdded:        1,
		TotalInvestment:         decimal.NewFromInt(250000),
		Snapshot:                valueobject.DecompositionSnapshot{},
		ReplannedBy:             actorID,
		CreatedAt:               now,
	}

	return adapter.ReplanWrite{
		Target:          &updated,
		ExpectedVersion: expectedVersion,
		MetricTargets:   []*entity.MetricTarget{metricTarget},
		MonthlyTargets:  []*entity.MonthlyTarget{monthly},
		Initiatives:     []*entity.Initiative{initiative},
		History:         history,
	}
}

func TestReplanningRepository_ApplyReplan(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites the decomposition and bumps the version", func(t *testing.T) {
		db := setupTestDB(t)
		target := seedTarget(t, db)
		repo := NewReplanningRepository(db)

		write := newReplanWrite(target, target.Version)
		if err := repo.ApplyReplan(ctx, write); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := NewTargetRepository(db).FindByID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to reload target: %v", err)
		}
		if stored.Version != 2 {
			t.Errorf("expected version 2, got %d", stored.Version)
		}
		if !stored.TargetEmissions.Equal(decimal.NewFromInt(3600)) {
			t.Errorf("expected target emissions 3600, got %s", stored.TargetEmissions)
		}

		metricTargets, err := NewMetricTargetRepository(db).FindByTargetID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to load metric targets: %v", err)
		}
		if len(metricTargets) != 1 {
			t.Fatalf("expected 1 metric target, got %d", len(metricTargets))
		}

		monthlies, err := NewMonthlyTargetRepository(db).FindByMetricTargetID(ctx, metricTargets[0].ID)
		if err != nil {
			t.Fatalf("failed to load monthly targets: %v", err)
		}
		if len(monthlies) != 1 {
			t.Errorf("expected 1 monthly target, got %d", len(monthlies))
		}

		record, err := NewReplanningHistoryRepository(db).FindByID(ctx, write.History.ID)
		if err != nil {
			t.Fatalf("failed to load history record: %v", err)
		}
		if record.TargetID != target.ID {
			t.Error("expected history record bound to the target")
		}
		if len(record.MetricCodes) != 1 || record.MetricCodes[0] != "purchased_electricity" {
			t.Errorf("expected metric codes preserved, got %v", record.MetricCodes)
		}
	})

	t.Run("replaces a prior decomposition entirely", func(t *testing.T) {
		db := setupTestDB(t)
		target := seedTarget(t, db)
		repo := NewReplanningRepository(db)

		first := newReplanWrite(target, 1)
		if err := repo.ApplyReplan(ctx, first); err != nil {
			t.Fatalf("unexpected error on first replan: %v", err)
		}
		second := newReplanWrite(target, 2)
		if err := repo.ApplyReplan(ctx, second); err != nil {
			t.Fatalf("unexpected error on second replan: %v", err)
		}

		metricTargets, err := NewMetricTargetRepository(db).FindByTargetID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to load metric targets: %v", err)
		}
		if len(metricTargets) != 1 {
			t.Fatalf("expected 1 metric target after second replan, got %d", len(metricTargets))
		}
		if metricTargets[0].ID != second.MetricTargets[0].ID {
			t.Error("expected only the second replan's metric target to remain")
		}

		// The first replan's monthly rows must be gone with their parent.
		monthlies, err := NewMonthlyTargetRepository(db).FindByMetricTargetID(ctx, first.MetricTargets[0].ID)
		if err != nil {
			t.Fatalf("failed to load monthly targets: %v", err)
		}
		if len(monthlies) != 0 {
			t.Errorf("expected replaced monthly targets deleted, got %d", len(monthlies))
		}

		records, err := NewReplanningHistoryRepository(db).FindByTargetID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to load history: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 history records, got %d", len(records))
		}
	})

	t.Run("stale version leaves everything untouched", func(t *testing.T) {
		db := setupTestDB(t)
		target := seedTarget(t, db)
		repo := NewReplanningRepository(db)

		if err := repo.ApplyReplan(ctx, newReplanWrite(target, 1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stale := newReplanWrite(target, 1) // target is at version 2 now
		err := repo.ApplyReplan(ctx, stale)
		if !errors.Is(err, domainerror.ErrStaleTargetVersion) {
			t.Fatalf("expected stale version error, got %v", err)
		}

		stored, err := NewTargetRepository(db).FindByID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to reload target: %v", err)
		}
		if stored.Version != 2 {
			t.Errorf("expected version still 2, got %d", stored.Version)
		}
		if _, err := NewReplanningHistoryRepository(db).FindByID(ctx, stale.History.ID); !errors.Is(err, domainerror.ErrHistoryRecordNotFound) {
			t.Error("expected no history record for the rejected replan")
		}
	})

	t.Run("mid-transaction failure rolls everything back", func(t *testing.T) {
		db := setupTestDB(t)
		target := seedTarget(t, db)
		repo := NewReplanningRepository(db)

		first := newReplanWrite(target, 1)
		if err := repo.ApplyReplan(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// A duplicated primary key makes the metric-target insert fail after
		// the header update and deletes already ran inside the transaction.
		broken := newReplanWrite(target, 2)
		duplicate := *broken.MetricTargets[0]
		broken.MetricTargets = append(broken.MetricTargets, &duplicate)

		if err := repo.ApplyReplan(ctx, broken); err == nil {
			t.Fatal("expected the replan to fail")
		}

		stored, err := NewTargetRepository(db).FindByID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to reload target: %v", err)
		}
		if stored.Version != 2 {
			t.Errorf("expected version unchanged at 2, got %d", stored.Version)
		}

		metricTargets, err := NewMetricTargetRepository(db).FindByTargetID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to load metric targets: %v", err)
		}
		if len(metricTargets) != 1 || metricTargets[0].ID != first.MetricTargets[0].ID {
			t.Error("expected the prior decomposition to survive the failed replan")
		}
	})
}

func TestReplanningRepository_Rollback(t *testing.T) {
	ctx := context.Background()

	t.Run("restores snapshot rows under their original identifiers", func(t *testing.T) {
		db := setupTestDB(t)
		target := seedTarget(t, db)
		repo := NewReplanningRepository(db)

		first := newReplanWrite(target, 1)
		if err := repo.ApplyReplan(ctx, first); err != nil {
			t.Fatalf("unexpected error on first replan: %v", err)
		}
		second := newReplanWrite(target, 2)
		if err := repo.ApplyReplan(ctx, second); err != nil {
			t.Fatalf("unexpected error on second replan: %v", err)
		}

		// Roll the second replan back to the first decomposition.
		now := time.Now().UTC()
		restored := *target
		restored.Version = 3
		restored.TargetEmissions = first.Target.TargetEmissions
		restored.UpdatedAt = now

		annotated := *second.History
		annotated.MarkRolledBack(now)

		err := repo.Rollback(ctx, adapter.RollbackWrite{
			Target:        &restored,
			MetricTargets: first.MetricTargets,
			Initiatives:   first.Initiatives,
			History:       &annotated,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := NewTargetRepository(db).FindByID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to reload target: %v", err)
		}
		if stored.Version != 4 {
			t.Errorf("expected version 4 after rollback, got %d", stored.Version)
		}

		metricTargets, err := NewMetricTargetRepository(db).FindByTargetID(ctx, target.ID)
		if err != nil {
			t.Fatalf("failed to load metric targets: %v", err)
		}
		if len(metricTargets) != 1 {
			t.Fatalf("expected 1 restored metric target, got %d", len(metricTargets))
		}
		if metricTargets[0].ID != first.MetricTargets[0].ID {
			t.Error("expected the restored metric target to keep its original ID")
		}

		// Monthly rows are not part of the snapshot and stay gone.
		monthlies, err := NewMonthlyTargetRepository(db).FindByMetricTargetID(ctx, first.MetricTargets[0].ID)
		if err != nil {
			t.Fatalf("failed to load monthly targets: %v", err)
		}
		if len(monthlies) != 0 {
			t.Errorf("expected no monthly targets after rollback, got %d", len(monthlies))
		}

		record, err := NewReplanningHistoryRepository(db).FindByID(ctx, second.History.ID)
		if err != nil {
			t.Fatalf("failed to reload history record: %v", err)
		}
		if record.RolledBackAt == nil {
			t.Error("expected the history record stamped as rolled back")
		}

		// The other record must be untouched.
		untouched, err := NewReplanningHistoryRepository(db).FindByID(ctx, first.History.ID)
		if err != nil {
			t.Fatalf("failed to reload first history record: %v", err)
		}
		if untouched.RolledBackAt != nil {
			t.Error("expected the first history record unannotated")
		}
	})

	t.Run("version mismatch aborts the rollback", func(t *testing.T) {
		db := setupTestDB(t)
		target := seedTarget(t, db)
		repo := NewReplanningRepository(db)

		first := newReplanWrite(target, 1)
		if err := repo.ApplyReplan(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		restored := *target // still carries version 1; target is at 2
		annotated := *first.History
		annotated.MarkRolledBack(time.Now().UTC())

		err := repo.Rollback(ctx, adapter.RollbackWrite{
			Target:  &restored,
			History: &annotated,
		})
		if !errors.Is(err, domainerror.ErrStaleTargetVersion) {
			t.Fatalf("expected stale version error, got %v", err)
		}
	})
}
