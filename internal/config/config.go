package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Alert    AlertConfig
	Content  ContentConfig
}

type AppConfig struct {
	Port                string
	BaseURL             string
	ClientURL           string
	Environment         string
	LogFilePath         string
	RealtimeLogFilePath string
	CorsAllowedOrigins  string
	NatsURL             string
	RedisURL            string
	OtelEnabled         bool
	OtelEndpoint        string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret string
	TokenTTL  time.Duration
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AlertConfig struct {
	OwnerEmail string
	Throttle   time.Duration
}

type ContentConfig struct {
	CacheTTL time.Duration
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:                getEnv("APP_PORT", "3000"),
			BaseURL:             getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:           getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:         getEnv("APP_ENV", "development"),
			LogFilePath:         getEnv("LOG_FILE_PATH", "logs/app.log"),
			RealtimeLogFilePath: getEnv("REALTIME_LOG_FILE_PATH", "logs/realtime.log"),
			CorsAllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:             getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379"),
			OtelEnabled:         getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:        getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Portfolio"),
		},
		Alert: AlertConfig{
			OwnerEmail: getEnv("OWNER_ALERT_EMAIL", ""),
			Throttle:   getEnvAsDuration("ALERT_THROTTLE", 10*time.Minute),
		},
		Content: ContentConfig{
			CacheTTL: getEnvAsDuration("CONTENT_CACHE_TTL", time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
