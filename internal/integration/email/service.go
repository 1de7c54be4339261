// Package email provides notification email functionality.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// Service queues replanning notifications for asynchronous delivery. Queueing
// happens outside the replan transaction; a queue failure never rolls back an
// applied replan.
type Service struct {
	queue      adapter.NotificationQueueRepository
	appBaseURL string
}

// NewService creates a new notification service. An empty appBaseURL omits
// target links from the emails.
func NewService(queue adapter.NotificationQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: strings.TrimSuffix(appBaseURL, "/"),
	}
}

func (s *Service) targetURL(targetID string) string {
	if s.appBaseURL == "" || targetID == "" {
		return ""
	}
	return fmt.Sprintf("%s/targets/%s", s.appBaseURL, targetID)
}

// QueueReplanAppliedNotification queues a notification about an applied replan.
func (s *Service) QueueReplanAppliedNotification(ctx context.Context, input adapter.ReplanAppliedNotification) error {
	subject := fmt.Sprintf("Reduction target replanned: %s", input.TargetName)

	templateData := map[string]interface{}{
		"target_name":          input.TargetName,
		"target_url":           s.targetURL(input.TargetID),
		"previous_target":      input.PreviousTarget,
		"new_target":           input.NewTarget,
		"target_year":          input.TargetYear,
		"metric_targets_count": input.MetricTargetsCount,
		"initiatives_count":    input.InitiativesCount,
		"total_investment":     input.TotalInvestment,
		"allocation_strategy":  input.AllocationStrategy,
		"trigger_reason":       input.TriggerReason,
	}

	job := entity.NewNotificationJob(
		entity.TemplateReplanApplied,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueueFailed,
			"failed to queue replan notification",
			err,
		)
	}

	return nil
}

// QueueRollbackNotification queues a notification about a rolled-back replan.
func (s *Service) QueueRollbackNotification(ctx context.Context, input adapter.RollbackNotification) error {
	subject := fmt.Sprintf("Replan rolled back: %s", input.TargetName)

	templateData := map[string]interface{}{
		"target_name":     input.TargetName,
		"target_url":      s.targetURL(input.TargetID),
		"restored_target": input.RestoredTarget,
		"rolled_back_at":  input.RolledBackAt,
	}

	job := entity.NewNotificationJob(
		entity.TemplateReplanRolledBack,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueueFailed,
			"failed to queue rollback notification",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.ReplanNotifier.
var _ adapter.ReplanNotifier = (*Service)(nil)
