// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carbon-tracker/backend/internal/application/usecase/metric"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/dto"
)

// MetricController handles metric catalog endpoints.
type MetricController struct {
	listUseCase *metric.ListMetricsUseCase
}

// NewMetricController creates a new metric controller instance.
func NewMetricController(listUseCase *metric.ListMetricsUseCase) *MetricController {
	return &MetricController{
		listUseCase: listUseCase,
	}
}

// List handles GET /metrics requests.
func (c *MetricController) List(ctx *gin.Context) {
	if _, _, ok := callerFromContext(ctx); !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricListResponse(output.Metrics))
}
