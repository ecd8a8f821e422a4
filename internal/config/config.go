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

	// Webhook Config (доставка realtime-событий)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Zone Config
	BlurRadiusMeters float64 `env:"BLUR_RADIUS_METERS" envDefault:"100"`

	// Friend Request Rate Limit
	FriendRequestLimit  int           `env:"FRIEND_REQUEST_LIMIT" envDefault:"5"`
	FriendRequestWindow time.Duration `env:"FRIEND_REQUEST_WINDOW" envDefault:"1h"`

	// Location Publication
	// Фолбэк-координата подставляется, когда источник геолокации недоступен,
	// чтобы намерение пользователя включить шаринг всё равно было выполнено.
	FallbackLatitude   float64       `env:"FALLBACK_LATITUDE" envDefault:"40.7580"`
	FallbackLongitude  float64       `env:"FALLBACK_LONGITUDE" envDefault:"-73.9855"`
	GeoTimeout         time.Duration `env:"GEO_TIMEOUT" envDefault:"10s"`
	MinPublishInterval time.Duration `env:"MIN_PUBLISH_INTERVAL" envDefault:"15s"`
	LocationCacheTTL   time.Duration `env:"LOCATION_CACHE_TTL" envDefault:"5m"`

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
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		BlurRadiusMeters:    getEnvAsFloat("BLUR_RADIUS_METERS", 100),
		FriendRequestLimit:  getEnvAsInt("FRIEND_REQUEST_LIMIT", 5),
		FriendRequestWindow: getEnvAsDuration("FRIEND_REQUEST_WINDOW", time.Hour),
		FallbackLatitude:    getEnvAsFloat("FALLBACK_LATITUDE", 40.7580),
		FallbackLongitude:   getEnvAsFloat("FALLBACK_LONGITUDE", -73.9855),
		GeoTimeout:          getEnvAsDuration("GEO_TIMEOUT", 10*time.Second),
		MinPublishInterval:  getEnvAsDuration("MIN_PUBLISH_INTERVAL", 15*time.Second),
		LocationCacheTTL:    getEnvAsDuration("LOCATION_CACHE_TTL", 5*time.Minute),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.BlurRadiusMeters <= 0 {
		return nil, fmt.Errorf("BLUR_RADIUS_METERS must be positive")
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
