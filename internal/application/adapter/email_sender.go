// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ReplanNotifier defines the interface for queueing replanning notifications.
type ReplanNotifier interface {
	// QueueReplanAppliedNotification queues a notification about an applied replan.
	QueueReplanAppliedNotification(ctx context.Context, input ReplanAppliedNotification) error

	// QueueRollbackNotification queues a notification about a rolled-back replan.
	QueueRollbackNotification(ctx context.Context, input RollbackNotification) error
}

// ReplanAppliedNotification represents the input for a replan-applied notification.
type ReplanAppliedNotification struct {
	RecipientEmail     string
	RecipientName      string
	TargetID           string
	TargetName         string
	PreviousTarget     string
	NewTarget          string
	TargetYear         int
	MetricTargetsCount int
	InitiativesCount   int
	TotalInvestment    string
	AllocationStrategy string
	TriggerReason      string
}

// RollbackNotification represents the input for a rollback notification.
type RollbackNotification struct {
	RecipientEmail string
	RecipientName  string
	TargetID       string
	TargetName     string
	RestoredTarget string
	RolledBackAt   string
}
