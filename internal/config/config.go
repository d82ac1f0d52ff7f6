package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" required:"true"`

	// Authentication: shared secret for verifying identity-provider tokens
	JWTSecret string `env:"JWT_SECRET" required:"true"`

	// Object storage (avatar uploads)
	S3Endpoint      string        `env:"S3_ENDPOINT" default:"http://localhost:9000"`
	S3AccessKey     string        `env:"S3_ACCESS_KEY"`
	S3SecretKey     string        `env:"S3_SECRET_KEY"`
	S3Bucket        string        `env:"S3_BUCKET" default:"levelhub"`
	S3PublicBaseURL string        `env:"S3_PUBLIC_BASE_URL" default:"http://localhost:9000/levelhub"`
	S3PresignTTL    time.Duration `env:"S3_PRESIGN_TTL" default:"15m"`

	// Avatar constraints
	AvatarMaxSizeBytes int64    `env:"AVATAR_MAX_SIZE_BYTES" default:"5242880"`
	AvatarAllowedTypes []string `env:"AVATAR_ALLOWED_TYPES" default:"image/jpeg,image/png,image/webp"`

	// Rate limiting
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" default:"20"`

	// Development
	LogLevel string `env:"LOG_LEVEL" default:"debug"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Try to load .env file from the project root
	if err := godotenv.Load(".env"); err != nil {
		// If .env file doesn't exist, that's OK - we can still use system env vars
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	// Database
	if err := loadEnvStringRequired(&config.DatabaseURL, "DATABASE_URL"); err != nil {
		return nil, err
	}

	// Authentication
	if err := loadEnvStringRequired(&config.JWTSecret, "JWT_SECRET"); err != nil {
		return nil, err
	}

	// Object storage
	if err := loadEnvString(&config.S3Endpoint, "S3_ENDPOINT", "http://localhost:9000"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3AccessKey, "S3_ACCESS_KEY", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3SecretKey, "S3_SECRET_KEY", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3Bucket, "S3_BUCKET", "levelhub"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3PublicBaseURL, "S3_PUBLIC_BASE_URL", "http://localhost:9000/levelhub"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.S3PresignTTL, "S3_PRESIGN_TTL", 15*time.Minute); err != nil {
		return nil, err
	}

	// Avatar constraints
	if err := loadEnvInt64(&config.AvatarMaxSizeBytes, "AVATAR_MAX_SIZE_BYTES", 5*1024*1024); err != nil {
		return nil, err
	}
	if err := loadEnvStringSlice(&config.AvatarAllowedTypes, "AVATAR_ALLOWED_TYPES", []string{"image/jpeg", "image/png", "image/webp"}); err != nil {
		return nil, err
	}

	// Rate limiting
	if err := loadEnvInt(&config.RateLimitRPS, "RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RateLimitBurst, "RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "debug"); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringRequired(target *string, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return fmt.Errorf("required environment variable %s is not set", key)
	}
	*target = value
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt64(target *int64, key string, defaultValue int64) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringSlice(target *[]string, key string, defaultValue []string) error {
	if value := os.Getenv(key); value != "" {
		*target = strings.Split(value, ",")
		// Trim whitespace from each element
		for i, v := range *target {
			(*target)[i] = strings.TrimSpace(v)
		}
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	// JWT secret length (should be at least 32 characters for security)
	if len(c.JWTSecret) < 32 {
		errors = append(errors, "JWT_SECRET should be at least 32 characters long")
	}

	if c.S3PresignTTL <= 0 {
		errors = append(errors, "S3_PRESIGN_TTL must be positive")
	}
	if c.AvatarMaxSizeBytes <= 0 {
		errors = append(errors, "AVATAR_MAX_SIZE_BYTES must be positive")
	}
	if len(c.AvatarAllowedTypes) == 0 {
		errors = append(errors, "AVATAR_ALLOWED_TYPES must not be empty")
	}
	if c.RateLimitRPS < 1 || c.RateLimitBurst < 1 {
		errors = append(errors, "RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
