// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carbon-tracker/backend/internal/application/usecase/variance"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/dto"
)

// VarianceController handles variance analysis endpoints.
type VarianceController struct {
	analysisUseCase *variance.VarianceAnalysisUseCase
}

// NewVarianceController creates a new variance controller instance.
func NewVarianceController(analysisUseCase *variance.VarianceAnalysisUseCase) *VarianceController {
	return &VarianceController{
		analysisUseCase: analysisUseCase,
	}
}

// Analyze handles GET /targets/:id/variance requests. The optional as_of
// query parameter (YYYY-MM-DD) defaults to today.
func (c *VarianceController) Analyze(ctx *gin.Context) {
	organizationID, _, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	targetID, ok := parseUUIDParam(ctx, "id", "Invalid target ID format")
	if !ok {
		return
	}

	asOf := time.Now().UTC()
	if asOfParam := ctx.Query("as_of"); asOfParam != "" {
		parsed, err := time.Parse("2006-01-02", asOfParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid as_of date, expected YYYY-MM-DD",
			})
			return
		}
		asOf = parsed
	}

	output, err := c.analysisUseCase.Execute(ctx.Request.Context(), variance.VarianceAnalysisInput{
		OrganizationID: organizationID,
		TargetID:       targetID,
		AsOfDate:       asOf,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVarianceResponse(targetID.String(), asOf.Format("2006-01-02"), output.Rows))
}
