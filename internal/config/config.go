package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Auth configuration
	Auth AuthConfig

	// Secrets backend configuration
	Secrets SecretsConfig

	// CORS configuration
	CORS CORSConfig

	// Rate limiting configuration
	RateLimit RateLimitConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// AuthConfig holds token verification and bootstrap settings.
// Mode selects the credential verifier: "local" verifies HMAC-signed
// tokens with SigningSecret, "remote" delegates to the external auth
// provider at ProviderURL.
type AuthConfig struct {
	Mode              string
	SigningSecret     string
	TokenTTL          time.Duration
	ProviderURL       string
	ProviderKey       string
	BootstrapEmail    string
	BootstrapPassword string
	BootstrapName     string
}

// SecretsConfig holds the secrets backend settings
type SecretsConfig struct {
	Enabled bool
	URL     string
	Token   string
	Timeout time.Duration
}

// CORSConfig holds allowed origins for cross-origin requests
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig holds request rate limiting settings
type RateLimitConfig struct {
	Enabled bool
	Window  time.Duration
	Max     int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "portfolio"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Auth: AuthConfig{
			Mode:              getEnv("AUTH_MODE", "local"),
			SigningSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:          getDurationEnv("JWT_TTL", 24*time.Hour),
			ProviderURL:       getEnv("AUTH_PROVIDER_URL", ""),
			ProviderKey:       getEnv("AUTH_PROVIDER_KEY", ""),
			BootstrapEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"),
			BootstrapPassword: getEnv("ADMIN_PASSWORD", "admin"),
			BootstrapName:     getEnv("ADMIN_NAME", "Administrator"),
		},
		Secrets: SecretsConfig{
			Enabled: getBoolEnv("SECRETS_ENABLED", false),
			URL:     getEnv("SECRETS_URL", ""),
			Token:   getEnv("SECRETS_TOKEN", ""),
			Timeout: getDurationEnv("SECRETS_TIMEOUT", 5*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getListEnv("CORS_ORIGINS", []string{"*"}),
		},
		RateLimit: RateLimitConfig{
			Enabled: getBoolEnv("RATE_LIMIT_ENABLED", true),
			Window:  getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
			Max:     getIntEnv("RATE_LIMIT_MAX", 120),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Auth.Mode != "local" && c.Auth.Mode != "remote" {
		return fmt.Errorf("AUTH_MODE must be 'local' or 'remote', got %q", c.Auth.Mode)
	}
	if c.Auth.Mode == "remote" && c.Auth.ProviderURL == "" {
		return fmt.Errorf("AUTH_PROVIDER_URL is required when AUTH_MODE=remote")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
