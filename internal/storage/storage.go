package storage

import (
	"errors"

	"railassist/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced record does not exist. It is
// never used for empty list results.
var ErrNotFound = errors.New("storage: record not found")

// Service owns every persistence path: entities in PostgreSQL via gorm,
// caching and lifecycle event pub/sub in Redis. Each consumer package
// declares the subset of its methods it depends on.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Log   *zap.Logger
}

func NewService(db *gorm.DB, rdb *redis.Client, log *zap.Logger) *Service {
	return &Service{DB: db, Redis: rdb, Log: log}
}

// Migrate creates or updates the schema for every entity.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Attachment{},
		&models.Notification{},
		&models.Message{},
		&models.EmergencyContact{},
		&models.FAQ{},
	)
}
