// Package target contains target-related use cases.
package target

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// GetTargetInput represents the input for retrieving a target.
type GetTargetInput struct {
	OrganizationID uuid.UUID
	TargetID       uuid.UUID
}

// GetTargetOutput represents the output of retrieving a target.
type GetTargetOutput struct {
	Target        *entity.Target
	MetricTargets []*entity.MetricTarget
}

// GetTargetUseCase retrieves a target with its current metric decomposition.
type GetTargetUseCase struct {
	targetRepo       adapter.TargetRepository
	metricTargetRepo adapter.MetricTargetRepository
}

// NewGetTargetUseCase creates a new GetTargetUseCase instance.
func NewGetTargetUseCase(targetRepo adapter.TargetRepository, metricTargetRepo adapter.MetricTargetRepository) *GetTargetUseCase {
	return &GetTargetUseCase{
		targetRepo:       targetRepo,
		metricTargetRepo: metricTargetRepo,
	}
}

// Execute retrieves the target.
func (uc *GetTargetUseCase) Execute(ctx context.Context, input GetTargetInput) (*GetTargetOutput, error) {
	target, err := uc.targetRepo.FindByIDForOrganization(ctx, input.TargetID, input.OrganizationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTargetNotFound) {
			return nil, domainerror.NewTargetError(
				domainerror.ErrCodeTargetNotFound,
				"target not found for organization",
				domainerror.ErrTargetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load target: %w", err)
	}

	metricTargets, err := uc.metricTargetRepo.FindByTargetID(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load metric targets: %w", err)
	}

	return &GetTargetOutput{
		Target:        target,
		MetricTargets: metricTargets,
	}, nil
}
