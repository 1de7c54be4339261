// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// MetricModel represents the metrics_catalog table in the database.
type MetricModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Scope     string    `gorm:"type:varchar(20);not null;index"`
	Unit      string    `gorm:"type:varchar(50);not null"`
	Category  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MetricModel.
func (MetricModel) TableName() string {
	return "metrics_catalog"
}

// ToEntity converts a MetricModel to a domain Metric entity.
func (m *MetricModel) ToEntity() *entity.Metric {
	return &entity.Metric{
		ID:        m.ID,
		Name:      m.Name,
		Code:      m.Code,
		Scope:     entity.MetricScope(m.Scope),
		Unit:      m.Unit,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}

// MetricFromEntity creates a MetricModel from a domain Metric entity.
func MetricFromEntity(metric *entity.Metric) *MetricModel {
	return &MetricModel{
		ID:        metric.ID,
		Name:      metric.Name,
		Code:      metric.Code,
		Scope:     string(metric.Scope),
		Unit:      metric.Unit,
		Category:  metric.Category,
		CreatedAt: metric.CreatedAt,
	}
}
