// Package attachment binds uploaded files to complaints. The binary
// itself lives with the blob collaborator; only the resulting reference
// is persisted, and only after the upload succeeded.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"railassist/backend/internal/models"
	"railassist/backend/internal/storage"

	"go.uber.org/zap"
)

var (
	ErrInvalidKind      = errors.New("attachment: unknown attachment kind")
	ErrUploaderDisabled = errors.New("attachment: no blob uploader configured")
)

// Store is the subset of the storage service attachments need.
type Store interface {
	CreateAttachment(ctx context.Context, attachment *models.Attachment) error
	GetAttachmentsByComplaint(ctx context.Context, complaintID string) ([]models.Attachment, error)
	GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error)
	SaveComplaint(ctx context.Context, complaint *models.Complaint) error
}

// Uploader is the blob storage collaborator. Upload returns the
// retrievable URL of the stored object.
type Uploader interface {
	Upload(ctx context.Context, data []byte, path string) (string, error)
}

type Service struct {
	Store    Store
	Uploader Uploader
	Log      *zap.Logger
}

func NewService(store Store, uploader Uploader, log *zap.Logger) *Service {
	return &Service{Store: store, Uploader: uploader, Log: log}
}

// Upload pushes the binary to the blob store and records the resulting
// reference on the complaint. Nothing is persisted when the upload fails.
func (s *Service) Upload(ctx context.Context, complaintID string, kind models.AttachmentKind, data []byte, name string) (*models.Attachment, error) {
	if !models.ValidAttachmentKind(kind) {
		return nil, ErrInvalidKind
	}
	if s.Uploader == nil {
		return nil, ErrUploaderDisabled
	}

	path := fmt.Sprintf("complaints/%s/%s", complaintID, name)
	url, err := s.Uploader.Upload(ctx, data, path)
	if err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}

	return s.Add(ctx, complaintID, kind, url, name)
}

// Add records an already-uploaded attachment, appends its id to the
// owning complaint's reference list and bumps the complaint's updated
// timestamp. Returns storage.ErrNotFound when the complaint is missing.
func (s *Service) Add(ctx context.Context, complaintID string, kind models.AttachmentKind, url, name string) (*models.Attachment, error) {
	if !models.ValidAttachmentKind(kind) {
		return nil, ErrInvalidKind
	}

	complaint, err := s.Store.GetComplaintByID(ctx, complaintID)
	if err != nil {
		return nil, fmt.Errorf("load complaint %s: %w", complaintID, err)
	}
	if complaint == nil {
		return nil, storage.ErrNotFound
	}

	attachment := &models.Attachment{
		ComplaintID: complaintID,
		Kind:        kind,
		URL:         url,
		Name:        name,
	}
	if err := s.Store.CreateAttachment(ctx, attachment); err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}

	complaint.AttachmentIDs = append(complaint.AttachmentIDs, attachment.ID)
	complaint.UpdatedAt = time.Now()
	if err := s.Store.SaveComplaint(ctx, complaint); err != nil {
		// The attachment record is committed and retrievable by complaint
		// id, so the mutation succeeded; only the denormalized reference
		// list on the complaint is stale. Report success rather than an
		// error that would misstate what happened.
		s.Log.Error("failed to append attachment reference",
			zap.String("complaint_id", complaintID),
			zap.String("attachment_id", attachment.ID),
			zap.Error(err))
	}

	return attachment, nil
}

// ByComplaint lists a complaint's attachments in upload order.
func (s *Service) ByComplaint(ctx context.Context, complaintID string) ([]models.Attachment, error) {
	return s.Store.GetAttachmentsByComplaint(ctx, complaintID)
}
