// Package notify turns complaint lifecycle events into user notifications
// and auto-generated thread messages, and owns the notification and
// message reads. Side effects are best-effort: a failure here never fails
// the mutation that produced the event.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"railassist/backend/internal/config"
	"railassist/backend/internal/models"
	"railassist/backend/internal/storage"

	"go.uber.org/zap"
)

var ErrEmptyContent = errors.New("notify: message content must not be empty")

// Store is the subset of the storage service the pipeline needs.
type Store interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetNotificationByID(ctx context.Context, id string) (*models.Notification, error)
	GetNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	CreateMessage(ctx context.Context, message *models.Message) error
	GetMessagesByComplaint(ctx context.Context, complaintID string) ([]models.Message, error)
	GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error)
	PublishEvent(ctx context.Context, event models.ComplaintEvent) error
}

// SLAProvider yields the optional SLA window used in submission messages.
// *routing.Router satisfies it.
type SLAProvider interface {
	SLAFor(department string) (config.DepartmentSLA, bool)
}

// StaffNotifier pushes an out-of-band alert to the operations channel.
// Implementations must be best-effort and non-blocking for the caller.
type StaffNotifier interface {
	Alert(ctx context.Context, text string)
}

// Pipeline implements complaint.Events.
type Pipeline struct {
	Store Store
	SLAs  SLAProvider
	Staff StaffNotifier // nil when no bridge is configured
	Log   *zap.Logger
}

func NewPipeline(store Store, slas SLAProvider, staff StaffNotifier, log *zap.Logger) *Pipeline {
	return &Pipeline{Store: store, SLAs: slas, Staff: staff, Log: log}
}

// ComplaintSubmitted creates the "Complaint Submitted" notification and
// the opening system message on the complaint thread. The two creations
// are independent.
func (p *Pipeline) ComplaintSubmitted(ctx context.Context, complaint *models.Complaint) {
	notification := &models.Notification{
		UserID: complaint.UserID,
		Title:  "Complaint Submitted",
		Body: fmt.Sprintf("Your %s complaint has been submitted and routed to %s.",
			complaint.Category, complaint.Department),
	}
	if err := p.Store.CreateNotification(ctx, notification); err != nil {
		p.Log.Error("failed to create submission notification",
			zap.String("complaint_id", complaint.ID), zap.Error(err))
	}

	content := fmt.Sprintf("Your complaint has been registered and assigned to the %s department.",
		complaint.Department)
	if sla, ok := p.SLAs.SLAFor(complaint.Department); ok {
		content += fmt.Sprintf(" Expected response within %d hours.", sla.ResponseHours)
	}
	p.createSystemMessage(ctx, complaint.ID, content)

	p.publish(ctx, models.ComplaintEvent{
		Type:        models.EventSubmitted,
		ComplaintID: complaint.ID,
		UserID:      complaint.UserID,
		Department:  complaint.Department,
		Status:      complaint.Status,
		OccurredAt:  time.Now(),
	})

	if p.Staff != nil {
		p.Staff.Alert(ctx, fmt.Sprintf("New %s complaint at %s, routed to %s.",
			complaint.Category, complaint.Location, complaint.Department))
	}
}

// ComplaintStatusChanged creates the "Complaint Status Updated"
// notification and the matching system message.
func (p *Pipeline) ComplaintStatusChanged(ctx context.Context, complaint *models.Complaint, oldStatus models.ComplaintStatus) {
	notification := &models.Notification{
		UserID: complaint.UserID,
		Title:  "Complaint Status Updated",
		Body:   fmt.Sprintf("Your complaint status has been updated to %s.", complaint.Status),
	}
	if err := p.Store.CreateNotification(ctx, notification); err != nil {
		p.Log.Error("failed to create status notification",
			zap.String("complaint_id", complaint.ID), zap.Error(err))
	}

	p.createSystemMessage(ctx, complaint.ID,
		fmt.Sprintf("Complaint status changed to %s.", complaint.Status))

	p.publish(ctx, models.ComplaintEvent{
		Type:        models.EventStatusChanged,
		ComplaintID: complaint.ID,
		UserID:      complaint.UserID,
		Department:  complaint.Department,
		Status:      complaint.Status,
		OldStatus:   oldStatus,
		OccurredAt:  time.Now(),
	})
}

func (p *Pipeline) createSystemMessage(ctx context.Context, complaintID, content string) {
	message := &models.Message{
		ComplaintID:   complaintID,
		SenderID:      models.SystemSender,
		Content:       content,
		AutoGenerated: true,
	}
	if err := p.Store.CreateMessage(ctx, message); err != nil {
		p.Log.Error("failed to create system message",
			zap.String("complaint_id", complaintID), zap.Error(err))
	}
}

func (p *Pipeline) publish(ctx context.Context, event models.ComplaintEvent) {
	if err := p.Store.PublishEvent(ctx, event); err != nil {
		p.Log.Warn("failed to publish lifecycle event",
			zap.String("complaint_id", event.ComplaintID), zap.Error(err))
	}
}

// MarkRead marks a notification as read on behalf of userID. Marking
// twice is a no-op, not an error. Returns storage.ErrNotFound for an
// unknown id; a notification belonging to another user is reported the
// same way so the id's existence is not leaked.
func (p *Pipeline) MarkRead(ctx context.Context, notificationID, userID string) error {
	notification, err := p.Store.GetNotificationByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return storage.ErrNotFound
	}
	return p.Store.MarkNotificationRead(ctx, notificationID)
}

// NotificationsForUser lists a user's notifications, newest first.
func (p *Pipeline) NotificationsForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return p.Store.GetNotificationsByUser(ctx, userID)
}

// AddMessage posts a user or staff message on a complaint thread.
func (p *Pipeline) AddMessage(ctx context.Context, complaintID, senderID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	complaint, err := p.Store.GetComplaintByID(ctx, complaintID)
	if err != nil {
		return nil, fmt.Errorf("load complaint %s: %w", complaintID, err)
	}
	if complaint == nil {
		return nil, storage.ErrNotFound
	}

	message := &models.Message{
		ComplaintID: complaintID,
		SenderID:    senderID,
		Content:     content,
	}
	if err := p.Store.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// Thread returns the complaint's messages in created-at order.
func (p *Pipeline) Thread(ctx context.Context, complaintID string) ([]models.Message, error) {
	return p.Store.GetMessagesByComplaint(ctx, complaintID)
}
