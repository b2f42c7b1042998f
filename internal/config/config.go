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
	HTTPPort string `env:"HTTP_PORT" envDefault:"4500"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// MongoDB Config
	MongoURI       string        `env:"MONGO_URI"`
	MongoDatabase  string        `env:"MONGO_DATABASE" envDefault:"BloodDonation"`
	MongoTimeout   time.Duration `env:"MONGO_TIMEOUT" envDefault:"10s"`
	MigrationsPath string        `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Search Config
	DefaultSearchRadiusKm float64 `env:"DEFAULT_SEARCH_RADIUS_KM" envDefault:"10"`
	MaxSearchRadiusKm     float64 `env:"MAX_SEARCH_RADIUS_KM" envDefault:"100"`

	// FrontendURL используется для ссылок accept/reject в уведомлениях
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "4500"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		MongoURI:              os.Getenv("MONGO_URI"),
		MongoDatabase:         getEnv("MONGO_DATABASE", "BloodDonation"),
		MongoTimeout:          getEnvAsDuration("MONGO_TIMEOUT", 10*time.Second),
		MigrationsPath:        getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:        getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:     getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:      getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DefaultSearchRadiusKm: getEnvAsFloat("DEFAULT_SEARCH_RADIUS_KM", 10),
		MaxSearchRadiusKm:     getEnvAsFloat("MAX_SEARCH_RADIUS_KM", 100),
		FrontendURL:           strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable is required")
	}

	if cfg.DefaultSearchRadiusKm <= 0 {
		return nil, fmt.Errorf("DEFAULT_SEARCH_RADIUS_KM must be positive, got %v", cfg.DefaultSearchRadiusKm)
	}

	if cfg.MaxSearchRadiusKm < cfg.DefaultSearchRadiusKm {
		return nil, fmt.Errorf("MAX_SEARCH_RADIUS_KM (%v) must not be less than DEFAULT_SEARCH_RADIUS_KM (%v)",
			cfg.MaxSearchRadiusKm, cfg.DefaultSearchRadiusKm)
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
