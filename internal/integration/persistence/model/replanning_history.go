// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
	"github.com/carbon-tracker/backend/internal/domain/valueobject"
)

// ReplanningHistoryModel represents the replanning_history table in the
// database. The snapshot columns hold a denormalized copy of the pre-replan
// decomposition, so records survive the destructive rewrite.
type ReplanningHistoryModel struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TargetID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	TriggerReason           string          `gorm:"type:varchar(20);not null"`
	PreviousTargetEmissions decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PreviousTargetYear      int             `gorm:"not null"`
	NewTargetEmissions      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	NewTargetYear           int             `gorm:"not null"`
	AllocationStrategy      string          `gorm:"type:varchar(50);not null"`
	MetricCodes             pq.StringArray  `gorm:"type:text[]"`
	MetricTargetsCreated    int             `gorm:"not null"`
	InitiativesAdded        int             `gorm:"not null"`
	TotalInvestment         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MetricTargetsSnapshot   string          `gorm:"type:jsonb;not null;default:'[]'"`
	InitiativesSnapshot     string          `gorm:"type:jsonb;not null;default:'[]'"`
	ReplannedBy             uuid.UUID       `gorm:"type:uuid;not null"`
	Notes                   string          `gorm:"type:text"`
	RolledBackAt            *time.Time      `gorm:"type:timestamp"`
	CreatedAt               time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the ReplanningHistoryModel.
func (ReplanningHistoryModel) TableName() string {
	return "replanning_history"
}

// ToEntity converts a ReplanningHistoryModel to a domain ReplanningHistoryRecord entity.
func (m *ReplanningHistoryModel) ToEntity() (*entity.ReplanningHistoryRecord, error) {
	var metricTargets []valueobject.MetricTargetSnapshot
	if m.MetricTargetsSnapshot != "" {
		if err := json.Unmarshal([]byte(m.MetricTargetsSnapshot), &metricTargets); err != nil {
			return nil, err
		}
	}

	var initiatives []valueobject.InitiativeSnapshot
	if m.InitiativesSnapshot != "" {
		if err := json.Unmarshal([]byte(m.InitiativesSnapshot), &initiatives); err != nil {
			return nil, err
		}
	}

	return &entity.ReplanningHistoryRecord{
		ID:                      m.ID,
		TargetID:                m.TargetID,
		TriggerReason:           entity.ReplanTrigger(m.TriggerReason),
		PreviousTargetEmissions: m.PreviousTargetEmissions,
		PreviousTargetYear:      m.PreviousTargetYear,
		NewTargetEmissions:      m.NewTargetEmissions,
		NewTargetYear:           m.NewTargetYear,
		AllocationStrategy:      m.AllocationStrategy,
		MetricCodes:             []string(m.MetricCodes),
		MetricTargetsCreated:    m.MetricTargetsCreated,
		InitiativesAdded:        m.InitiativesAdded,
		TotalInvestment:         m.TotalInvestment,
		Snapshot: valueobject.DecompositionSnapshot{
			MetricTargets: metricTargets,
			Initiatives:   initiatives,
		},
		ReplannedBy:  m.ReplannedBy,
		Notes:        m.Notes,
		RolledBackAt: m.RolledBackAt,
		CreatedAt:    m.CreatedAt,
	}, nil
}

// ReplanningHistoryFromEntity creates a ReplanningHistoryModel from a domain
// ReplanningHistoryRecord entity.
func ReplanningHistoryFromEntity(record *entity.ReplanningHistoryRecord) (*ReplanningHistoryModel, error) {
	metricTargetsJSON, err := json.Marshal(record.Snapshot.MetricTargets)
	if err != nil {
		return nil, err
	}

	initiativesJSON, err := json.Marshal(record.Snapshot.Initiatives)
	if err != nil {
		return nil, err
	}

	return &ReplanningHistoryModel{
		ID:                      record.ID,
		TargetID:                record.TargetID,
		TriggerReason:           string(record.TriggerReason),
		PreviousTargetEmissions: record.PreviousTargetEmissions,
		PreviousTargetYear:      record.PreviousTargetYear,
		NewTargetEmissions:      record.NewTargetEmissions,
		NewTargetYear:           record.NewTargetYear,
		AllocationStrategy:      record.AllocationStrategy,
		MetricCodes:             pq.StringArray(record.MetricCodes),
		MetricTargetsCreated:    record.MetricTargetsCreated,
		InitiativesAdded:        record.InitiativesAdded,
		TotalInvestment:         record.TotalInvestment,
		MetricTargetsSnapshot:   string(metricTargetsJSON),
		InitiativesSnapshot:     string(initiativesJSON),
		ReplannedBy:             record.ReplannedBy,
		Notes:                   record.Notes,
		RolledBackAt:            record.RolledBackAt,
		CreatedAt:               record.CreatedAt,
	}, nil
}
