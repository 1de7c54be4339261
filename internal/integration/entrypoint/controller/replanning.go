// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carbon-tracker/backend/internal/application/usecase/replanning"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/dto"
)

// ReplanningController handles replanning and rollback endpoints.
type ReplanningController struct {
	applyUseCase    *replanning.ApplyReplanningUseCase
	rollbackUseCase *replanning.RollbackUseCase
}

// NewReplanningController creates a new replanning controller instance.
func NewReplanningController(
	applyUseCase *replanning.ApplyReplanningUseCase,
	rollbackUseCase *replanning.RollbackUseCase,
) *ReplanningController {
	return &ReplanningController{
		applyUseCase:    applyUseCase,
		rollbackUseCase: rollbackUseCase,
	}
}

// Apply handles POST /targets/:id/replan requests.
func (c *ReplanningController) Apply(ctx *gin.Context) {
	organizationID, userID, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	targetID, ok := parseUUIDParam(ctx, "id", "Invalid target ID format")
	if !ok {
		return
	}

	var req dto.ApplyReplanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingReplanFields),
		})
		return
	}

	input := dto.ToApplyReplanningInput(req, organizationID, targetID, userID)

	output, err := c.applyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToApplyReplanResponse(output))
}

// Rollback handles POST /replanning-history/:id/rollback requests.
func (c *ReplanningController) Rollback(ctx *gin.Context) {
	organizationID, userID, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	historyID, ok := parseUUIDParam(ctx, "id", "Invalid history record ID format")
	if !ok {
		return
	}

	output, err := c.rollbackUseCase.Execute(ctx.Request.Context(), replanning.RollbackInput{
		OrganizationID: organizationID,
		HistoryID:      historyID,
		ActorID:        userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RollbackResponse{
		TargetID:              output.TargetID.String(),
		MetricTargetsRestored: output.MetricTargetsRestored,
		InitiativesRestored:   output.InitiativesRestored,
		Message:               output.Message,
	})
}
