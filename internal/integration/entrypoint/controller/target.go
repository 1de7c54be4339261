// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/application/usecase/target"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/middleware"
)

// TargetController handles reduction target endpoints.
type TargetController struct {
	createUseCase      *target.CreateTargetUseCase
	getUseCase         *target.GetTargetUseCase
	listUseCase        *target.ListTargetsUseCase
	listHistoryUseCase *target.ListHistoryUseCase
}

// NewTargetController creates a new target controller instance.
func NewTargetController(
	createUseCase *target.CreateTargetUseCase,
	getUseCase *target.GetTargetUseCase,
	listUseCase *target.ListTargetsUseCase,
	listHistoryUseCase *target.ListHistoryUseCase,
) *TargetController {
	return &TargetController{
		createUseCase:      createUseCase,
		getUseCase:         getUseCase,
		listUseCase:        listUseCase,
		listHistoryUseCase: listHistoryUseCase,
	}
}

// Create handles POST /targets requests.
func (c *TargetController) Create(ctx *gin.Context) {
	organizationID, userID, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	var req dto.CreateTargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTargetFields),
		})
		return
	}

	input := target.CreateTargetInput{
		OrganizationID:    organizationID,
		Name:              req.Name,
		Description:       req.Description,
		BaselineYear:      req.BaselineYear,
		BaselineEmissions: req.BaselineEmissions,
		TargetYear:        req.TargetYear,
		TargetEmissions:   req.TargetEmissions,
		ActorID:           userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTargetResponse(output.Target))
}

// List handles GET /targets requests.
func (c *TargetController) List(ctx *gin.Context) {
	organizationID, _, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), target.ListTargetsInput{
		OrganizationID: organizationID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTargetListResponse(output.Targets))
}

// Get handles GET /targets/:id requests.
func (c *TargetController) Get(ctx *gin.Context) {
	organizationID, _, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	targetID, ok := parseUUIDParam(ctx, "id", "Invalid target ID format")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), target.GetTargetInput{
		OrganizationID: organizationID,
		TargetID:       targetID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTargetDetailResponse(output.Target, output.MetricTargets))
}

// ListHistory handles GET /targets/:id/replanning-history requests.
func (c *TargetController) ListHistory(ctx *gin.Context) {
	organizationID, _, ok := callerFromContext(ctx)
	if !ok {
		return
	}

	targetID, ok := parseUUIDParam(ctx, "id", "Invalid target ID format")
	if !ok {
		return
	}

	output, err := c.listHistoryUseCase.Execute(ctx.Request.Context(), target.ListHistoryInput{
		OrganizationID: organizationID,
		TargetID:       targetID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHistoryListResponse(output.Records))
}

// callerFromContext extracts the caller's organization and user IDs, writing
// the unauthorized response itself when they are absent.
func callerFromContext(ctx *gin.Context) (organizationID, userID uuid.UUID, ok bool) {
	organizationID, orgOK := middleware.GetOrganizationIDFromContext(ctx)
	userID, userOK := middleware.GetUserIDFromContext(ctx)
	if !orgOK || !userOK {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, uuid.Nil, false
	}
	return organizationID, userID, true
}

// parseUUIDParam parses a UUID path parameter, writing the bad-request
// response itself on failure.
func parseUUIDParam(ctx *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: message,
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleDomainError maps domain errors to HTTP responses.
func handleDomainError(ctx *gin.Context, err error) {
	var targetErr *domainerror.TargetError
	if errors.As(err, &targetErr) {
		ctx.JSON(statusForTargetError(targetErr.Code), dto.ErrorResponse{
			Error: targetErr.Message,
			Code:  string(targetErr.Code),
		})
		return
	}

	var replanErr *domainerror.ReplanningError
	if errors.As(err, &replanErr) {
		ctx.JSON(statusForReplanningError(replanErr.Code), dto.ErrorResponse{
			Error: replanErr.Message,
			Code:  string(replanErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForTargetError maps target error codes to HTTP status codes.
func statusForTargetError(code domainerror.TargetErrorCode) int {
	switch code {
	case domainerror.ErrCodeTargetNotFound, domainerror.ErrCodeTargetMetricNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTargetNotOwned:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTargetYears,
		domainerror.ErrCodeInvalidTargetEmissions,
		domainerror.ErrCodeMissingTargetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForReplanningError maps replanning error codes to HTTP status codes.
func statusForReplanningError(code domainerror.ReplanningErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyDecomposition,
		domainerror.ErrCodeMixedTargetYears,
		domainerror.ErrCodeInvalidReductionPercent,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeMissingReplanFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeHistoryRecordNotFound, domainerror.ErrCodeMonthlyTargetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeStaleTargetVersion, domainerror.ErrCodeTargetLocked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
