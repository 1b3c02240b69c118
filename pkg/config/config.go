package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis token cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Session tokens
	JWTSecret       string
	JWTAccessExpiry time.Duration

	// Ephemeral auth tokens (verification codes, reset tokens)
	VerificationTTL time.Duration
	ResetTokenTTL   time.Duration

	// Outbound mail
	SendGridAPIKey string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	EmailFrom      string
	MailTimeout    time.Duration

	// PayPal
	PayPalClientID     string
	PayPalClientSecret string
	PayPalBaseURL      string

	// Development escape hatch: return verification/reset codes in API
	// responses when no mail transport delivers them. Ignored in production.
	ExposeAuthCodes bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),

		DBHost:     getEnv("POSTGRES_HOST", "localhost"),
		DBPort:     getEnv("POSTGRES_PORT", "5432"),
		DBUser:     getEnv("POSTGRES_USER", "postgres"),
		DBPassword: getEnv("POSTGRES_PASSWORD", ""),
		DBName:     getEnv("POSTGRES_DB", "konasal"),
		DBSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry: getEnvDuration("JWT_ACCESS_EXPIRY", 30*time.Minute),

		VerificationTTL: getEnvDuration("VERIFICATION_TTL", 10*time.Minute),
		ResetTokenTTL:   getEnvDuration("RESET_TOKEN_TTL", 10*time.Minute),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		SMTPHost:       getEnv("EMAIL_HOST", ""),
		SMTPPort:       getEnvInt("EMAIL_PORT", 587),
		SMTPUsername:   getEnv("EMAIL_USERNAME", ""),
		SMTPPassword:   getEnv("EMAIL_PASSWORD", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "no-reply@konasalti.com"),
		MailTimeout:    getEnvDuration("MAIL_TIMEOUT", 15*time.Second),

		PayPalClientID:     getEnv("PAYPAL_CLIENT_ID", ""),
		PayPalClientSecret: getEnv("PAYPAL_CLIENT_SECRET", ""),
		PayPalBaseURL:      getEnv("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com"),

		ExposeAuthCodes: getEnvBool("AUTH_EXPOSE_CODES", false),
	}
}

// IsProduction reports whether the process runs with production settings.
// The raw-code response fallback stays off in production regardless of
// AUTH_EXPOSE_CODES.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DatabaseDSN builds the Postgres connection string for gorm.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
