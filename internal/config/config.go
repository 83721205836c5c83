package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// DefaultFeeRate is the service fee added to every checkout subtotal.
const DefaultFeeRate = 0.15

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	CORS     CORSConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int
	Host string
}

// StoreConfig selects where per-client orders, wishlists and profiles live
type StoreConfig struct {
	Backend string // memory, postgres, redis
	// SeedDemoProfile creates a profile for the anonymous client at startup.
	SeedDemoProfile bool
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string // Full PostgreSQL URL
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// CatalogConfig controls the event catalog and checkout pricing
type CatalogConfig struct {
	// Path to a JSON or YAML catalog; empty uses the bundled catalog.
	Path string
	// ReferenceDate pins "today" for date filters and order tabs.
	ReferenceDate time.Time
	FeeRate       float64
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LocalEnvFile is read before the environment when present.
const LocalEnvFile = "config/local.env"

// Load reads configuration from LocalEnvFile and environment variables.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load(LocalEnvFile)

	cfg := &Config{}

	if err := cfg.loadServer(); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}

	cfg.Store.Backend = strings.ToLower(getEnvOrDefault("STORE_BACKEND", BackendMemory))
	seed, err := strconv.ParseBool(getEnvOrDefault("SEED_DEMO_PROFILE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_PROFILE: %w", err)
	}
	cfg.Store.SeedDemoProfile = seed

	if err := cfg.loadDatabase(); err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	if err := cfg.loadRedis(); err != nil {
		return nil, fmt.Errorf("load redis config: %w", err)
	}

	if err := cfg.loadCatalog(); err != nil {
		return nil, fmt.Errorf("load catalog config: %w", err)
	}

	cfg.loadCORS()
	cfg.loadLogging()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadServer() error {
	portStr := getEnvOrDefault("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port
	c.Server.Host = getEnvOrDefault("HOST", "0.0.0.0")
	return nil
}

func (c *Config) loadDatabase() error {
	c.Database.URL = os.Getenv("DATABASE_URL")
	if c.Database.URL != "" {
		return nil
	}

	c.Database.Host = getEnvOrDefault("DB_HOST", "localhost")
	c.Database.User = os.Getenv("DB_USER")
	c.Database.Password = os.Getenv("DB_PASSWORD")
	c.Database.Name = os.Getenv("DB_NAME")
	c.Database.SSLMode = getEnvOrDefault("DB_SSLMODE", "disable")

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	c.Database.Port = port

	if c.Database.User != "" && c.Database.Name != "" {
		c.Database.URL = fmt.Sprintf(
			"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
			c.Database.User,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
			c.Database.SSLMode,
		)
	}
	return nil
}

func (c *Config) loadRedis() error {
	c.Redis.Addr = getEnvOrDefault("REDIS_ADDR", "localhost:6379")
	c.Redis.Password = os.Getenv("REDIS_PASSWORD")
	c.Redis.KeyPrefix = getEnvOrDefault("REDIS_KEY_PREFIX", "ticketfront:")

	db, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	c.Redis.DB = db
	return nil
}

func (c *Config) loadCatalog() error {
	c.Catalog.Path = os.Getenv("CATALOG_PATH")

	if raw := os.Getenv("REFERENCE_DATE"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("invalid REFERENCE_DATE: %w", err)
		}
		c.Catalog.ReferenceDate = day
	}

	rate, err := strconv.ParseFloat(getEnvOrDefault("FEE_RATE", strconv.FormatFloat(DefaultFeeRate, 'f', -1, 64)), 64)
	if err != nil {
		return fmt.Errorf("invalid FEE_RATE: %w", err)
	}
	c.Catalog.FeeRate = rate
	return nil
}

func (c *Config) loadCORS() {
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		c.CORS.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
		return
	}
	for _, origin := range strings.Split(originsEnv, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			c.CORS.AllowedOrigins = append(c.CORS.AllowedOrigins, trimmed)
		}
	}
}

func (c *Config) loadLogging() {
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", "info")
	c.Logging.Format = getEnvOrDefault("LOG_FORMAT", "json")
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}

	switch c.Store.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Database.URL == "" {
			errors = append(errors, "DATABASE_URL is required for the postgres store (or DB_USER, DB_NAME)")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			errors = append(errors, "REDIS_ADDR is required for the redis store")
		}
		if c.Redis.DB < 0 {
			errors = append(errors, "REDIS_DB must not be negative")
		}
	default:
		errors = append(errors, "STORE_BACKEND must be one of: memory, postgres, redis")
	}

	if c.Catalog.FeeRate < 0 || c.Catalog.FeeRate >= 1 {
		errors = append(errors, "FEE_RATE must be in [0, 1)")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		errors = append(errors, "LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		errors = append(errors, "LOG_FORMAT must be one of: json, text")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
