// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents the status of a notification job in the queue.
type NotificationStatus string

const (
	NotificationStatusPending    NotificationStatus = "pending"
	NotificationStatusProcessing NotificationStatus = "processing"
	NotificationStatusSent       NotificationStatus = "sent"
	NotificationStatusFailed     NotificationStatus = "failed"
)

// NotificationTemplateType represents the type of notification template.
type NotificationTemplateType string

const (
	TemplateReplanApplied    NotificationTemplateType = "replan_applied"
	TemplateReplanRolledBack NotificationTemplateType = "replan_rolled_back"
)

// NotificationJob represents a notification email in the queue waiting to be
// sent. Delivery is best-effort and fully decoupled from the replanning
// transaction.
type NotificationJob struct {
	ID             uuid.UUID
	TemplateType   NotificationTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         NotificationStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string // message ID assigned by the email provider
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewNotificationJob creates a new NotificationJob with default values.
func NewNotificationJob(templateType NotificationTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *NotificationJob {
	now := time.Now().UTC()
	return &NotificationJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         NotificationStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the job as currently being processed.
func (n *NotificationJob) MarkProcessing() {
	n.Status = NotificationStatusProcessing
}

// MarkSent marks the job as successfully sent.
func (n *NotificationJob) MarkSent(providerID string) {
	now := time.Now().UTC()
	n.Status = NotificationStatusSent
	n.ProviderID = providerID
	n.ProcessedAt = &now
}

// MarkFailed records a failed attempt. The job stays retryable until the
// attempt budget is exhausted.
func (n *NotificationJob) MarkFailed(errMsg string) {
	n.Attempts++
	n.LastError = errMsg
	if n.Attempts >= n.MaxAttempts {
		now := time.Now().UTC()
		n.Status = NotificationStatusFailed
		n.ProcessedAt = &now
	} else {
		n.Status = NotificationStatusPending
	}
}
