// Package target contains target-related use cases.
package target

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// ListTargetsInput represents the input for listing targets.
type ListTargetsInput struct {
	OrganizationID uuid.UUID
}

// ListTargetsOutput represents the output of listing targets.
type ListTargetsOutput struct {
	Targets []*entity.Target
}

// ListTargetsUseCase lists an organization's targets.
type ListTargetsUseCase struct {
	targetRepo adapter.TargetRepository
}

// NewListTargetsUseCase creates a new ListTargetsUseCase instance.
func NewListTargetsUseCase(targetRepo adapter.TargetRepository) *ListTargetsUseCase {
	return &ListTargetsUseCase{
		targetRepo: targetRepo,
	}
}

// Execute lists the organization's targets.
func (uc *ListTargetsUseCase) Execute(ctx context.Context, input ListTargetsInput) (*ListTargetsOutput, error) {
	targets, err := uc.targetRepo.FindByOrganizationID(ctx, input.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}

	return &ListTargetsOutput{
		Targets: targets,
	}, nil
}
