package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Catalog source backends.
const (
	CatalogSourceFile     = "file"
	CatalogSourceS3       = "s3"
	CatalogSourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	S3       S3Config
	Stylist  StylistConfig
	Checkout CheckoutConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// CatalogConfig selects where the product catalogue is loaded from at
// startup.
type CatalogConfig struct {
	Source   string // "file", "s3" or "postgres"
	FilePath string
}

// DatabaseConfig holds PostgreSQL configuration, used when the catalog
// source is "postgres".
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// S3Config holds AWS S3 configuration, used when the catalog source is
// "s3".
type S3Config struct {
	Bucket string
	Region string
	Key    string
}

// StylistConfig holds configuration for the AI style assistant.
type StylistConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// CheckoutConfig holds configuration for the checkout flow.
type CheckoutConfig struct {
	// ProcessingDelay is how long the simulated payment gateway takes
	// to authorise a payment.
	ProcessingDelay time.Duration

	// ConfirmTimeout bounds a single confirmation attempt; expiry is
	// reported as a payment timeout.
	ConfirmTimeout time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Catalog: CatalogConfig{
			Source:   getEnv("CATALOG_SOURCE", CatalogSourceFile),
			FilePath: getEnv("CATALOG_FILE", "data/products.json"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "ethnicelite"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 10),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 2),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "ap-south-1"),
			Key:    getEnv("S3_KEY", "catalog/products.json"),
		},
		Stylist: StylistConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			Temperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.7),
			Timeout:     getEnvAsDuration("STYLIST_TIMEOUT", 20*time.Second),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: getEnvAsDuration("CHECKOUT_PROCESSING_DELAY", 2500*time.Millisecond),
			ConfirmTimeout:  getEnvAsDuration("CHECKOUT_CONFIRM_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	switch c.Catalog.Source {
	case CatalogSourceFile:
		if c.Catalog.FilePath == "" {
			return fmt.Errorf("catalog file path is required when catalog source is file")
		}
	case CatalogSourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when catalog source is s3")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when catalog source is s3")
		}
		if c.S3.Key == "" {
			return fmt.Errorf("S3 key is required when catalog source is s3")
		}
	case CatalogSourcePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required when catalog source is postgres")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required when catalog source is postgres")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required when catalog source is postgres")
		}
		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s (must be file, s3 or postgres)", c.Catalog.Source)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Stylist.Temperature < 0 || c.Stylist.Temperature > 2 {
		return fmt.Errorf("invalid stylist temperature: %f (must be between 0 and 2)", c.Stylist.Temperature)
	}

	if c.Stylist.Timeout <= 0 {
		return fmt.Errorf("stylist timeout must be positive")
	}

	if c.Checkout.ProcessingDelay < 0 {
		return fmt.Errorf("checkout processing delay cannot be negative")
	}

	if c.Checkout.ConfirmTimeout <= c.Checkout.ProcessingDelay {
		return fmt.Errorf("checkout confirm timeout must exceed the processing delay")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a duration or returns a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
