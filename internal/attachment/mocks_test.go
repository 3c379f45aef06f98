package attachment_test

import (
	"context"

	"railassist/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of the attachment.Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateAttachment(ctx context.Context, attachment *models.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockStore) GetAttachmentsByComplaint(ctx context.Context, complaintID string) ([]models.Attachment, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attachment), args.Error(1)
}

func (m *MockStore) GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStore) SaveComplaint(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

// MockUploader is a testify mock of the attachment.Uploader interface.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, data []byte, path string) (string, error) {
	args := m.Called(ctx, data, path)
	return args.String(0), args.Error(1)
}
