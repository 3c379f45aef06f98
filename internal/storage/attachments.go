package storage

import (
	"context"

	"railassist/backend/internal/models"
)

func (s *Service) CreateAttachment(ctx context.Context, attachment *models.Attachment) error {
	return s.DB.WithContext(ctx).Create(attachment).Error
}

func (s *Service) GetAttachmentsByComplaint(ctx context.Context, complaintID string) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := s.DB.WithContext(ctx).
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&attachments).Error
	return attachments, err
}
