// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carbon-tracker/backend/internal/application/usecase/actuals"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/dto"
)

// ActualsController handles monthly actuals endpoints.
type ActualsController struct {
	recordUseCase *actuals.RecordActualUseCase
}

// NewActualsController creates a new actuals controller instance.
func NewActualsController(recordUseCase *actuals.RecordActualUseCase) *ActualsController {
	return &ActualsController{
		recordUseCase: recordUseCase,
	}
}

// Record handles PUT /metric-targets/:id/actuals requests.
func (c *ActualsController) Record(ctx *gin.Context) {
	if _, _, ok := callerFromContext(ctx); !ok {
		return
	}

	metricTargetID, ok := parseUUIDParam(ctx, "id", "Invalid metric target ID format")
	if !ok {
		return
	}

	var req dto.RecordActualRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingReplanFields),
		})
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), actuals.RecordActualInput{
		MetricTargetID:  metricTargetID,
		Year:            req.Year,
		Month:           req.Month,
		ActualValue:     req.ActualValue,
		ActualEmissions: req.ActualEmissions,
		ActualFactor:    req.ActualFactor,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTargetResponse(output.MonthlyTarget))
}
