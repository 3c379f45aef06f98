package complaint_test

import (
	"context"

	"railassist/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of the complaint.Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockStore) GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStore) GetComplaintsByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStore) GetComplaintsByDepartment(ctx context.Context, department string) ([]models.Complaint, error) {
	args := m.Called(ctx, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStore) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStore) SaveComplaint(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

// MockEvents records lifecycle event emissions.
type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) ComplaintSubmitted(ctx context.Context, complaint *models.Complaint) {
	m.Called(ctx, complaint)
}

func (m *MockEvents) ComplaintStatusChanged(ctx context.Context, complaint *models.Complaint, oldStatus models.ComplaintStatus) {
	m.Called(ctx, complaint, oldStatus)
}
