package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Business BusinessConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// BusinessConfig holds venue-level configuration. Punches are grouped by
// the calendar date in the venue timezone, not UTC.
type BusinessConfig struct {
	Timezone string
}

// PayrollConfig tunes the computation cache and the storage retry policy.
type PayrollConfig struct {
	AggregateCacheTTL time.Duration
	SettingsCacheTTL  time.Duration
	RetryMaxAttempts  int
	RetryBaseDelay    time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "lengolf_backoffice"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Business = BusinessConfig{
		Timezone: getEnv("BUSINESS_TIMEZONE", "Asia/Bangkok"),
	}

	aggregateTTL, err := time.ParseDuration(getEnv("PAYROLL_AGGREGATE_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_AGGREGATE_CACHE_TTL: %w", err)
	}
	settingsTTL, err := time.ParseDuration(getEnv("PAYROLL_SETTINGS_CACHE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_SETTINGS_CACHE_TTL: %w", err)
	}
	retryAttempts, err := strconv.Atoi(getEnv("PAYROLL_RETRY_MAX_ATTEMPTS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_RETRY_MAX_ATTEMPTS: %w", err)
	}
	retryBaseDelay, err := time.ParseDuration(getEnv("PAYROLL_RETRY_BASE_DELAY", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_RETRY_BASE_DELAY: %w", err)
	}

	config.Payroll = PayrollConfig{
		AggregateCacheTTL: aggregateTTL,
		SettingsCacheTTL:  settingsTTL,
		RetryMaxAttempts:  retryAttempts,
		RetryBaseDelay:    retryBaseDelay,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if _, err := time.LoadLocation(c.Business.Timezone); err != nil {
		return fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", c.Business.Timezone, err)
	}
	if c.Payroll.RetryMaxAttempts < 1 {
		return fmt.Errorf("PAYROLL_RETRY_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

// Location returns the venue timezone. Validate has already checked it parses.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Business.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
