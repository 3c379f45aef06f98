package storage

import (
	"context"
	"errors"

	"railassist/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) CreateNotification(ctx context.Context, notification *models.Notification) error {
	return s.DB.WithContext(ctx).Create(notification).Error
}

func (s *Service) GetNotificationByID(ctx context.Context, id string) (*models.Notification, error) {
	var notification models.Notification
	err := s.DB.WithContext(ctx).First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (s *Service) GetNotificationsByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkNotificationRead flips the read flag. The flag never reverts, so
// re-marking an already-read notification is harmless.
func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	result := s.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
