// Package target contains target-related use cases.
package target

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// CreateTargetInput represents the input for target creation.
type CreateTargetInput struct {
	OrganizationID    uuid.UUID
	Name              string
	Description       string
	BaselineYear      int
	BaselineEmissions decimal.Decimal
	TargetYear        int
	TargetEmissions   decimal.Decimal
	ActorID           uuid.UUID
}

// CreateTargetOutput represents the output of target creation.
type CreateTargetOutput struct {
	Target *entity.Target
}

// CreateTargetUseCase handles target creation logic.
type CreateTargetUseCase struct {
	targetRepo adapter.TargetRepository
}

// NewCreateTargetUseCase creates a new CreateTargetUseCase instance.
func NewCreateTargetUseCase(targetRepo adapter.TargetRepository) *CreateTargetUseCase {
	return &CreateTargetUseCase{
		targetRepo: targetRepo,
	}
}

// Execute performs the target creation.
func (uc *CreateTargetUseCase) Execute(ctx context.Context, input CreateTargetInput) (*CreateTargetOutput, error) {
	if input.OrganizationID == uuid.Nil || input.Name == "" {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeMissingTargetFields,
			"organization and name are required",
			nil,
		)
	}

	// Target year must be after baseline year.
	if input.TargetYear <= input.BaselineYear {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidTargetYears,
			fmt.Sprintf("target year %d must be after baseline year %d", input.TargetYear, input.BaselineYear),
			domainerror.ErrInvalidTargetYears,
		)
	}

	if input.BaselineEmissions.IsNegative() || input.TargetEmissions.IsNegative() {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidTargetEmissions,
			"emissions values must not be negative",
			domainerror.ErrInvalidTargetEmissions,
		)
	}

	target := entity.NewTarget(
		input.OrganizationID,
		input.Name,
		input.Description,
		input.BaselineYear,
		input.BaselineEmissions,
		input.TargetYear,
		input.TargetEmissions,
		input.ActorID,
	)

	if err := uc.targetRepo.Create(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}

	return &CreateTargetOutput{
		Target: target,
	}, nil
}
