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

// ListHistoryInput represents the input for listing a target's replanning history.
type ListHistoryInput struct {
	OrganizationID uuid.UUID
	TargetID       uuid.UUID
}

// ListHistoryOutput represents the output of listing replanning history.
type ListHistoryOutput struct {
	Records []*entity.ReplanningHistoryRecord
}

// ListHistoryUseCase lists a target's replanning history, newest first.
type ListHistoryUseCase struct {
	targetRepo  adapter.TargetRepository
	historyRepo adapter.ReplanningHistoryRepository
}

// NewListHistoryUseCase creates a new ListHistoryUseCase instance.
func NewListHistoryUseCase(targetRepo adapter.TargetRepository, historyRepo adapter.ReplanningHistoryRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		targetRepo:  targetRepo,
		historyRepo: historyRepo,
	}
}

// Execute lists the history records.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	if _, err := uc.targetRepo.FindByIDForOrganization(ctx, input.TargetID, input.OrganizationID); err != nil {
		if errors.Is(err, domainerror.ErrTargetNotFound) {
			return nil, domainerror.NewTargetError(
				domainerror.ErrCodeTargetNotFound,
				"target not found for organization",
				domainerror.ErrTargetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load target: %w", err)
	}

	records, err := uc.historyRepo.FindByTargetID(ctx, input.TargetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replanning history: %w", err)
	}

	return &ListHistoryOutput{
		Records: records,
	}, nil
}
