package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	LogLevel    string
	// Session tokens
	JWTSecret     string
	TokenTTLHours int
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	DefaultLocale string
	// Redis Configuration (rate limiting + password reset tokens)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
	// File storage
	StorageDriver string // "disk" or "s3"
	StorageDir    string
	S3Region      string
	S3Bucket      string
	S3AccessKey   string
	S3SecretKey   string
	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	// Offer cleanup
	CleanupSchedule string // cron spec, default daily at 03:00
	OfferGraceDays  int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		FrontendURL:   strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 72),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@empleaworks.com"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "es"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		// File storage
		StorageDriver: getEnv("STORAGE_DRIVER", "disk"),
		StorageDir:    getEnv("STORAGE_DIR", "storage"),
		S3Region:      getEnv("S3_REGION", ""),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3AccessKey:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:   getEnv("S3_SECRET_ACCESS_KEY", ""),
		// Google OAuth
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		// Offer cleanup
		CleanupSchedule: getEnv("CLEANUP_SCHEDULE", "0 3 * * *"),
		OfferGraceDays:  getEnvInt("OFFER_GRACE_DAYS", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Sessions cannot be issued or verified.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
