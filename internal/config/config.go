package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// NATS Config (пустой URL отключает публикацию в NATS)
	NATSURL     string `env:"NATS_URL"`
	NATSSubject string `env:"NATS_SUBJECT" envDefault:"efir.created"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Detection Config
	DetectionEnabled  bool          `env:"DETECTION_ENABLED" envDefault:"true"`
	DetectionInterval time.Duration `env:"DETECTION_INTERVAL_MINUTES" envDefault:"15"`
	MissingThreshold  time.Duration `env:"MISSING_THRESHOLD" envDefault:"24h"`
	DwellThreshold    time.Duration `env:"DWELL_THRESHOLD" envDefault:"2h"`
	PassWorkers       int           `env:"PASS_WORKERS" envDefault:"8"`
	PassLockTTL       time.Duration `env:"PASS_LOCK_TTL" envDefault:"10m"`
	FIRMaxAttempts    int           `env:"FIR_MAX_ATTEMPTS" envDefault:"5"`
	ZoneCacheTTL      time.Duration `env:"ZONE_CACHE_TTL" envDefault:"24h"`
	ReconcileOrphans  bool          `env:"RECONCILE_ORPHANS" envDefault:"true"`
	OrphanBatchSize   int           `env:"ORPHAN_BATCH_SIZE" envDefault:"50"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		NATSURL:           os.Getenv("NATS_URL"),
		NATSSubject:       getEnv("NATS_SUBJECT", "efir.created"),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DetectionEnabled:  getEnvAsBool("DETECTION_ENABLED", true),
		DetectionInterval: time.Duration(getEnvAsInt("DETECTION_INTERVAL_MINUTES", 15)) * time.Minute,
		MissingThreshold:  getEnvAsDuration("MISSING_THRESHOLD", 24*time.Hour),
		DwellThreshold:    getEnvAsDuration("DWELL_THRESHOLD", 2*time.Hour),
		PassWorkers:       getEnvAsInt("PASS_WORKERS", 8),
		PassLockTTL:       getEnvAsDuration("PASS_LOCK_TTL", 10*time.Minute),
		FIRMaxAttempts:    getEnvAsInt("FIR_MAX_ATTEMPTS", 5),
		ZoneCacheTTL:      getEnvAsDuration("ZONE_CACHE_TTL", 24*time.Hour),
		ReconcileOrphans:  getEnvAsBool("RECONCILE_ORPHANS", true),
		OrphanBatchSize:   getEnvAsInt("ORPHAN_BATCH_SIZE", 50),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.DetectionInterval <= 0 {
		return nil, fmt.Errorf("DETECTION_INTERVAL_MINUTES must be positive")
	}
	if cfg.PassWorkers < 1 {
		cfg.PassWorkers = 1
	}
	if cfg.FIRMaxAttempts < 1 {
		cfg.FIRMaxAttempts = 1
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
