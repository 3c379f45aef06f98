package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"railassist/backend/internal/api/handler"
	"railassist/backend/internal/attachment"
	"railassist/backend/internal/auth"
	"railassist/backend/internal/complaint"
	"railassist/backend/internal/config"
	"railassist/backend/internal/logger"
	"railassist/backend/internal/notify"
	"railassist/backend/internal/routing"
	"railassist/backend/internal/storage"
	"railassist/backend/internal/support"
	"railassist/backend/internal/telephony"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config, log *zap.Logger) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect PostgreSQL", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to connect Redis", zap.Error(err))
	}

	return db, rdb
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger needs the config, so this one failure goes out raw.
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting RailAssist backend")

	db, rdb := setupDependencies(cfg, log)
	store := storage.NewService(db, rdb, log)
	if err := store.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	router, err := routing.New()
	if err != nil {
		// A category without a department is a deployment fault.
		log.Fatal("invalid department routing configuration", zap.Error(err))
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	supportSvc := support.NewService(store)
	if err := supportSvc.Seed(startupCtx, config.SeedEmergencyContacts, config.SeedFAQs); err != nil {
		log.Fatal("failed to seed support directory", zap.Error(err))
	}

	var staff notify.StaffNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.StaffChatID != 0 {
		notifier, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken,
			cfg.Telegram.StaffChatID, cfg.ExternalCallTimeout, log)
		if err != nil {
			log.Fatal("failed to start telegram staff bridge", zap.Error(err))
		}
		staff = notifier
	}

	pipeline := notify.NewPipeline(store, router, staff, log)
	complaints := complaint.NewService(store, router, pipeline, log)

	var uploader attachment.Uploader
	if bucket := os.Getenv("GCS_BUCKET"); bucket != "" {
		gcsUploader, err := attachment.NewGCSUploader(startupCtx, bucket)
		if err != nil {
			log.Fatal("failed to create blob uploader", zap.Error(err))
		}
		uploader = gcsUploader
	}
	attachments := attachment.NewService(store, uploader, log)

	authSvc := auth.NewService(store, cfg.JWTSecret, log)
	phone := telephony.NewService(cfg.Twilio, cfg.ExternalCallTimeout, log)

	r := gin.Default()
	h := handler.NewHandler(authSvc, complaints, attachments, pipeline, supportSvc, phone, store, log)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Info("listening", zap.String("port", cfg.ServerPort))
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
