package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	LogLevel   string
	LogFormat  string
	Database   DatabaseConfig
	Redis      RedisConfig
	Telegram   TelegramConfig
	Twilio     TwilioConfig

	// ExternalCallTimeout bounds every call to a collaborator that is not
	// covered by the request context (Telegram, Twilio).
	ExternalCallTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN renders the Postgres connection string for gorm.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// TelegramConfig enables the staff alert bridge when BotToken is set.
type TelegramConfig struct {
	BotToken    string
	StaffChatID int64
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	// ForwardToNumber is the operator line every shim call is bridged to.
	ForwardToNumber string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "railassist"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       int(getEnvInt64("REDIS_DB", 0)),
		},
		Telegram: TelegramConfig{
			BotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
			StaffChatID: getEnvInt64("TELEGRAM_STAFF_CHAT_ID", 0),
		},
		Twilio: TwilioConfig{
			AccountSID:      os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:       os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber:      os.Getenv("TWILIO_FROM_NUMBER"),
			ForwardToNumber: os.Getenv("TWILIO_FORWARD_TO_NUMBER"),
		},
		ExternalCallTimeout: 10 * time.Second,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var parsed int64
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil {
		return defaultValue
	}
	return parsed
}
