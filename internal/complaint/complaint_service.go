// Package complaint implements the complaint lifecycle: submission,
// status transitions and the reads the dashboards are built on.
package complaint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"railassist/backend/internal/models"
	"railassist/backend/internal/routing"
	"railassist/backend/internal/storage"

	"go.uber.org/zap"
)

var (
	ErrInvalidCategory   = errors.New("complaint: unknown category")
	ErrInvalidStatus     = errors.New("complaint: unknown status")
	ErrEmptyLocation     = errors.New("complaint: location must not be empty")
	ErrEmptyDescription  = errors.New("complaint: description must not be empty")
	ErrComplaintResolved = errors.New("complaint: resolved complaints cannot change status")
	ErrInvalidTransition = errors.New("complaint: status transition not allowed")
)

// transitions is the allowed status graph. Staff may skip "routed" when
// they pick up or close a complaint straight from triage.
var transitions = map[models.ComplaintStatus][]models.ComplaintStatus{
	models.StatusPending:    {models.StatusRouted, models.StatusInProgress, models.StatusResolved},
	models.StatusRouted:     {models.StatusInProgress, models.StatusResolved},
	models.StatusInProgress: {models.StatusResolved},
	models.StatusResolved:   {},
}

func transitionAllowed(from, to models.ComplaintStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Store is the subset of the storage service the lifecycle needs.
type Store interface {
	CreateComplaint(ctx context.Context, complaint *models.Complaint) error
	GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error)
	GetComplaintsByUser(ctx context.Context, userID string) ([]models.Complaint, error)
	GetComplaintsByDepartment(ctx context.Context, department string) ([]models.Complaint, error)
	GetAllComplaints(ctx context.Context) ([]models.Complaint, error)
	SaveComplaint(ctx context.Context, complaint *models.Complaint) error
}

// Events receives lifecycle events after the primary mutation has been
// persisted. Implementations are best-effort: they must not fail the
// operation that emitted the event.
type Events interface {
	ComplaintSubmitted(ctx context.Context, complaint *models.Complaint)
	ComplaintStatusChanged(ctx context.Context, complaint *models.Complaint, oldStatus models.ComplaintStatus)
}

// Service handles the business logic for complaints.
type Service struct {
	Store  Store
	Router *routing.Router
	Events Events
	Log    *zap.Logger
}

func NewService(store Store, router *routing.Router, events Events, log *zap.Logger) *Service {
	return &Service{Store: store, Router: router, Events: events, Log: log}
}

// Submit validates the input, stamps the responsible department and
// persists a new pending complaint, then emits the Submitted event.
func (s *Service) Submit(ctx context.Context, userID string, category models.ComplaintCategory, location, description string) (*models.Complaint, error) {
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	now := time.Now()
	complaint := &models.Complaint{
		UserID:      userID,
		Category:    category,
		Location:    location,
		Description: description,
		Status:      models.StatusPending,
		Department:  s.Router.ResolveDepartment(category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.CreateComplaint(ctx, complaint); err != nil {
		return nil, fmt.Errorf("submit complaint: %w", err)
	}

	s.Log.Info("complaint submitted",
		zap.String("complaint_id", complaint.ID),
		zap.String("user_id", userID),
		zap.String("category", string(category)),
		zap.String("department", complaint.Department))

	s.Events.ComplaintSubmitted(ctx, complaint)
	return complaint, nil
}

// UpdateStatus moves a complaint along the lifecycle graph. A non-empty
// department overrides the current assignment. Returns
// storage.ErrNotFound when the complaint does not exist and
// ErrComplaintResolved when it already reached the terminal state.
func (s *Service) UpdateStatus(ctx context.Context, complaintID string, status models.ComplaintStatus, department string) (*models.Complaint, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	complaint, err := s.Store.GetComplaintByID(ctx, complaintID)
	if err != nil {
		return nil, fmt.Errorf("load complaint %s: %w", complaintID, err)
	}
	if complaint == nil {
		return nil, storage.ErrNotFound
	}

	if complaint.Status == models.StatusResolved {
		return nil, ErrComplaintResolved
	}
	if !transitionAllowed(complaint.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, complaint.Status, status)
	}

	oldStatus := complaint.Status
	complaint.Status = status
	if department != "" {
		complaint.Department = department
	}
	complaint.UpdatedAt = time.Now()

	if err := s.Store.SaveComplaint(ctx, complaint); err != nil {
		return nil, fmt.Errorf("update complaint %s: %w", complaintID, err)
	}

	s.Log.Info("complaint status updated",
		zap.String("complaint_id", complaint.ID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(status)))

	s.Events.ComplaintStatusChanged(ctx, complaint, oldStatus)
	return complaint, nil
}

// ByID returns (nil, nil) when the complaint does not exist.
func (s *Service) ByID(ctx context.Context, complaintID string) (*models.Complaint, error) {
	return s.Store.GetComplaintByID(ctx, complaintID)
}

func (s *Service) ByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	return s.Store.GetComplaintsByUser(ctx, userID)
}

func (s *Service) ByDepartment(ctx context.Context, department string) ([]models.Complaint, error) {
	return s.Store.GetComplaintsByDepartment(ctx, department)
}

func (s *Service) All(ctx context.Context) ([]models.Complaint, error) {
	return s.Store.GetAllComplaints(ctx)
}
