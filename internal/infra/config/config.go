package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"
	_ "time/tzdata" // Timezone database for minimal images

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverYAML     = "yaml"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken   string
	GroupChatID     int64 // Chat that receives the daily nearest-event message
	GroupThreadID   int   // Forum topic inside GroupChatID, 0 for none
	AdminTelegramID int64
	StorageDriver   string
	DatabaseURL     string
	MigrationsPath  string
	EventsFile      string
	Timezone        string
	Location        *time.Location
	CronSpecDaily   string
	MinYear         int
	MaxYear         int
	MetricsAddr     string // Empty disables the metrics endpoint
	LogLevel        string
	LogFile         string // Rotated log file, empty logs to stdout only
	LogMaxSizeMB    int
	LogMaxBackups   int
	Environment     string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	groupIDStr := os.Getenv("TG_GROUP_ID")
	if groupIDStr == "" {
		return nil, fmt.Errorf("TG_GROUP_ID is not set")
	}
	cfg.GroupChatID, err = strconv.ParseInt(groupIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TG_GROUP_ID: %w", err)
	}

	if threadIDStr := os.Getenv("TG_THREAD_ID"); threadIDStr != "" {
		cfg.GroupThreadID, err = strconv.Atoi(threadIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid TG_THREAD_ID: %w", err)
		}
	}

	adminIDStr := os.Getenv("ADMIN_TELEGRAM_ID")
	if adminIDStr == "" {
		return nil, fmt.Errorf("ADMIN_TELEGRAM_ID is not set")
	}
	cfg.AdminTelegramID, err = strconv.ParseInt(adminIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_ID: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", StorageDriverPostgres))
	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
		cfg.MigrationsPath = getEnvOrDefault("MIGRATIONS_PATH", "migrations")
	case StorageDriverYAML:
		cfg.EventsFile = getEnvOrDefault("EVENTS_FILE", "events.yaml")
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	cfg.Timezone = getEnvOrDefault("TIMEZONE", "Asia/Yekaterinburg")
	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	cfg.CronSpecDaily = getEnvOrDefault("CRON_SPEC_DAILY", "0 9 * * *") // Default: 09:00 daily

	cfg.MinYear, err = strconv.Atoi(getEnvOrDefault("MIN_YEAR", "1900"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIN_YEAR: %w", err)
	}
	cfg.MaxYear, err = strconv.Atoi(getEnvOrDefault("MAX_YEAR", "2050"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_YEAR: %w", err)
	}
	if cfg.MinYear > cfg.MaxYear {
		return nil, fmt.Errorf("MIN_YEAR %d is greater than MAX_YEAR %d", cfg.MinYear, cfg.MaxYear)
	}

	cfg.MetricsAddr = os.Getenv("METRICS_ADDR")
	if _, set := os.LookupEnv("METRICS_ADDR"); !set {
		cfg.MetricsAddr = ":9090"
	}

	cfg.LogLevel = strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	cfg.LogFile = os.Getenv("LOG_FILE")
	if _, set := os.LookupEnv("LOG_FILE"); !set {
		cfg.LogFile = "logs/event_reminder_bot.log"
	}
	cfg.LogMaxSizeMB, err = strconv.Atoi(getEnvOrDefault("LOG_MAX_SIZE_MB", "1"))
	if err != nil || cfg.LogMaxSizeMB < 1 {
		return nil, fmt.Errorf("invalid LOG_MAX_SIZE_MB %q: must be a positive number", os.Getenv("LOG_MAX_SIZE_MB"))
	}
	cfg.LogMaxBackups, err = strconv.Atoi(getEnvOrDefault("LOG_MAX_BACKUPS", "5"))
	if err != nil || cfg.LogMaxBackups < 0 {
		return nil, fmt.Errorf("invalid LOG_MAX_BACKUPS %q: must be zero or more", os.Getenv("LOG_MAX_BACKUPS"))
	}
	cfg.Environment = strings.ToLower(getEnvOrDefault("ENVIRONMENT", "development"))

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
