package support_test

import (
	"context"
	"testing"

	"railassist/backend/internal/config"
	"railassist/backend/internal/models"
	"railassist/backend/internal/support"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EmergencyContact), args.Error(1)
}

func (m *MockStore) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FAQ), args.Error(1)
}

func (m *MockStore) SeedSupportDirectory(ctx context.Context, contacts []models.EmergencyContact, faqs []models.FAQ) error {
	args := m.Called(ctx, contacts, faqs)
	return args.Error(0)
}

func TestFAQsByCategoryGroupsRepeatedCategories(t *testing.T) {
	store := new(MockStore)
	service := support.NewService(store)

	faqs := []models.FAQ{
		{ID: "1", Question: "How do I file a complaint?", Category: "Complaints"},
		{ID: "2", Question: "Why is the wifi slow?", Category: "Connectivity"},
		{ID: "3", Question: "How do I track my complaint?", Category: "Complaints"},
	}
	store.On("ListFAQs", mock.Anything).Return(faqs, nil)

	grouped, err := service.FAQsByCategory(context.Background())

	assert.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["Complaints"], 2)
	assert.Equal(t, "How do I file a complaint?", grouped["Complaints"][0].Question)
	assert.Equal(t, "How do I track my complaint?", grouped["Complaints"][1].Question)
	assert.Len(t, grouped["Connectivity"], 1)
}

func TestGroupByCategoryEmptyInput(t *testing.T) {
	assert.Empty(t, support.GroupByCategory(nil))
}

func TestSeedPassesStaticDirectory(t *testing.T) {
	store := new(MockStore)
	service := support.NewService(store)

	store.On("SeedSupportDirectory", mock.Anything,
		config.SeedEmergencyContacts, config.SeedFAQs).Return(nil)

	err := service.Seed(context.Background(), config.SeedEmergencyContacts, config.SeedFAQs)

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSeedDataIsWellFormed(t *testing.T) {
	assert.NotEmpty(t, config.SeedEmergencyContacts)
	for _, contact := range config.SeedEmergencyContacts {
		assert.NotEmpty(t, contact.Name)
		assert.NotEmpty(t, contact.PhoneNumber)
	}

	assert.NotEmpty(t, config.SeedFAQs)
	for _, faq := range config.SeedFAQs {
		assert.NotEmpty(t, faq.Question)
		assert.NotEmpty(t, faq.Answer)
		assert.NotEmpty(t, faq.Category)
	}

	grouped := support.GroupByCategory(config.SeedFAQs)
	assert.Less(t, len(grouped), len(config.SeedFAQs))
}
