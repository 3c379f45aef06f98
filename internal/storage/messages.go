package storage

import (
	"context"

	"railassist/backend/internal/models"
)

func (s *Service) CreateMessage(ctx context.Context, message *models.Message) error {
	return s.DB.WithContext(ctx).Create(message).Error
}

// GetMessagesByComplaint returns the complaint thread in created-at order.
func (s *Service) GetMessagesByComplaint(ctx context.Context, complaintID string) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.WithContext(ctx).
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
