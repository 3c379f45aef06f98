// Package support serves the static help directory: emergency contacts
// and FAQs.
package support

import (
	"context"

	"railassist/backend/internal/models"
)

// Store is the subset of the storage service the directory needs.
type Store interface {
	ListEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error)
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
	SeedSupportDirectory(ctx context.Context, contacts []models.EmergencyContact, faqs []models.FAQ) error
}

type Service struct {
	Store Store
}

func NewService(store Store) *Service {
	return &Service{Store: store}
}

func (s *Service) EmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	return s.Store.ListEmergencyContacts(ctx)
}

func (s *Service) FAQs(ctx context.Context) ([]models.FAQ, error) {
	return s.Store.ListFAQs(ctx)
}

// FAQsByCategory groups the FAQ list for display. Grouping is a read-side
// concern; the category is not a stored hierarchy.
func (s *Service) FAQsByCategory(ctx context.Context) (map[string][]models.FAQ, error) {
	faqs, err := s.Store.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(faqs), nil
}

// GroupByCategory buckets FAQs under their category key, preserving the
// input order inside each bucket.
func GroupByCategory(faqs []models.FAQ) map[string][]models.FAQ {
	grouped := make(map[string][]models.FAQ, len(faqs))
	for _, faq := range faqs {
		grouped[faq.Category] = append(grouped[faq.Category], faq)
	}
	return grouped
}

// Seed loads the static directory data into storage if it is empty.
func (s *Service) Seed(ctx context.Context, contacts []models.EmergencyContact, faqs []models.FAQ) error {
	return s.Store.SeedSupportDirectory(ctx, contacts, faqs)
}
