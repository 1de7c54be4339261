// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// MetricResponse represents one catalog metric in API responses.
type MetricResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Scope    string `json:"scope"`
	Unit     string `json:"unit"`
	Category string `json:"category,omitempty"`
}

// MetricListResponse represents the response for listing the metric catalog.
type MetricListResponse struct {
	Metrics []MetricResponse `json:"metrics"`
}

// ToMetricResponse converts a domain Metric entity to a MetricResponse DTO.
func ToMetricResponse(m *entity.Metric) MetricResponse {
	return MetricResponse{
		ID:       m.ID.String(),
		Name:     m.Name,
		Code:     m.Code,
		Scope:    string(m.Scope),
		Unit:     m.Unit,
		Category: m.Category,
	}
}

// ToMetricListResponse converts a list of metrics to a MetricListResponse.
func ToMetricListResponse(metrics []*entity.Metric) MetricListResponse {
	responses := make([]MetricResponse, len(metrics))
	for i, m := range metrics {
		responses[i] = ToMetricResponse(m)
	}
	return MetricListResponse{
		Metrics: responses,
	}
}
