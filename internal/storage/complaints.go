package storage

import (
	"context"
	"errors"

	"railassist/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (s *Service) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusPending
	}
	if err := s.DB.WithContext(ctx).Create(complaint).Error; err != nil {
		s.Log.Error("failed to create complaint",
			zap.String("user_id", complaint.UserID), zap.Error(err))
		return err
	}
	return nil
}

// GetComplaintByID returns (nil, nil) when the complaint does not exist.
// Callers must handle absence explicitly.
func (s *Service) GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.WithContext(ctx).First(&complaint, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (s *Service) GetComplaintsByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

func (s *Service) GetComplaintsByDepartment(ctx context.Context, department string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.WithContext(ctx).
		Where("department = ?", department).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

func (s *Service) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// SaveComplaint writes the full record back. Last writer wins; there is no
// per-record version check.
func (s *Service) SaveComplaint(ctx context.Context, complaint *models.Complaint) error {
	return s.DB.WithContext(ctx).Save(complaint).Error
}
