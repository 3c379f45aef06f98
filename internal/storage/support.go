package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"railassist/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	contactsCacheKey = "support:contacts"
	faqsCacheKey     = "support:faqs"
	supportCacheTTL  = 10 * time.Minute
)

// ListEmergencyContacts reads through the Redis cache. A cache failure is
// logged and falls back to Postgres.
func (s *Service) ListEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	if s.cacheGet(ctx, contactsCacheKey, &contacts) {
		return contacts, nil
	}
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	s.cacheSet(ctx, contactsCacheKey, contacts)
	return contacts, nil
}

// ListFAQs reads through the Redis cache, same as contacts.
func (s *Service) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	var faqs []models.FAQ
	if s.cacheGet(ctx, faqsCacheKey, &faqs) {
		return faqs, nil
	}
	if err := s.DB.WithContext(ctx).Order("category ASC, question ASC").Find(&faqs).Error; err != nil {
		return nil, err
	}
	s.cacheSet(ctx, faqsCacheKey, faqs)
	return faqs, nil
}

// SeedSupportDirectory loads the static directory if it is empty and
// invalidates the cache. Seeding an already-populated directory is a no-op.
func (s *Service) SeedSupportDirectory(ctx context.Context, contacts []models.EmergencyContact, faqs []models.FAQ) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.EmergencyContact{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(contacts) > 0 {
		if err := s.DB.WithContext(ctx).Create(&contacts).Error; err != nil {
			return err
		}
	}
	if err := s.DB.WithContext(ctx).Model(&models.FAQ{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(faqs) > 0 {
		if err := s.DB.WithContext(ctx).Create(&faqs).Error; err != nil {
			return err
		}
	}
	if s.Redis != nil {
		s.Redis.Del(ctx, contactsCacheKey, faqsCacheKey)
	}
	return nil
}

func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.Redis == nil {
		return false
	}
	raw, err := s.Redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		s.Log.Warn("support cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.Log.Warn("support cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, raw, supportCacheTTL).Err(); err != nil {
		s.Log.Warn("support cache write failed", zap.String("key", key), zap.Error(err))
	}
}
