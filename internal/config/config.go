package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	SMTP     SMTPConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// ReportConfig holds fallback aggregation settings applied when a tenant
// has not configured its own.
type ReportConfig struct {
	DefaultTimezone           string
	DefaultRoundingMinutes    int
	DefaultWeekStartsOn       int
	DefaultOvertimeThreshold  int
	DefaultOvertimeMultiplier float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

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
		Name:     getEnv("DB_NAME", "clockin"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// SMTP configuration (optional; notifications degrade to in-app only)
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@clockin.app"),
		FromName: getEnv("SMTP_FROM_NAME", "ClockIn"),
	}

	// Aggregation defaults for tenants without explicit settings
	rounding, err := strconv.Atoi(getEnv("REPORT_DEFAULT_ROUNDING_MINUTES", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_DEFAULT_ROUNDING_MINUTES: %w", err)
	}
	weekStart, err := strconv.Atoi(getEnv("REPORT_DEFAULT_WEEK_STARTS_ON", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_DEFAULT_WEEK_STARTS_ON: %w", err)
	}
	threshold, err := strconv.Atoi(getEnv("REPORT_DEFAULT_OVERTIME_THRESHOLD_MINUTES", "2400"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_DEFAULT_OVERTIME_THRESHOLD_MINUTES: %w", err)
	}
	multiplier, err := strconv.ParseFloat(getEnv("REPORT_DEFAULT_OVERTIME_MULTIPLIER", "1.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_DEFAULT_OVERTIME_MULTIPLIER: %w", err)
	}
	config.Report = ReportConfig{
		DefaultTimezone:           getEnv("REPORT_DEFAULT_TIMEZONE", "UTC"),
		DefaultRoundingMinutes:    rounding,
		DefaultWeekStartsOn:       weekStart,
		DefaultOvertimeThreshold:  threshold,
		DefaultOvertimeMultiplier: multiplier,
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
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
