package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Bonus      BonusConfig
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

// AttendanceConfig holds reconciliation and ingestion settings.
type AttendanceConfig struct {
	// DedupWindow is the window within which a punch for the same
	// employee/device/kind is treated as a duplicate of an existing one.
	DedupWindow time.Duration
	// ReconcileInterval is how often the background reconciliation job runs.
	ReconcileInterval time.Duration
	// ReconcileWindowDays bounds how far back a batch run looks for
	// unprocessed punches.
	ReconcileWindowDays int
	// DefaultDailyHours is the regular-hours threshold used when no
	// overtime rule matches the date.
	DefaultDailyHours float64
}

// BonusConfig holds bonus approval workflow settings.
type BonusConfig struct {
	RequiredApprovals int
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments where
	// everything arrives through the environment.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "mir_ams"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

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

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	dedupWindow, err := time.ParseDuration(getEnv("PUNCH_DEDUP_WINDOW", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUNCH_DEDUP_WINDOW: %w", err)
	}

	reconcileInterval, err := time.ParseDuration(getEnv("RECONCILE_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_INTERVAL: %w", err)
	}

	windowDays, err := strconv.Atoi(getEnv("RECONCILE_WINDOW_DAYS", "31"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_WINDOW_DAYS: %w", err)
	}

	defaultHours, err := strconv.ParseFloat(getEnv("DEFAULT_DAILY_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_DAILY_HOURS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		DedupWindow:         dedupWindow,
		ReconcileInterval:   reconcileInterval,
		ReconcileWindowDays: windowDays,
		DefaultDailyHours:   defaultHours,
	}

	requiredApprovals, err := strconv.Atoi(getEnv("BONUS_REQUIRED_APPROVALS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid BONUS_REQUIRED_APPROVALS: %w", err)
	}
	config.Bonus = BonusConfig{RequiredApprovals: requiredApprovals}

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
	if c.Attendance.ReconcileWindowDays <= 0 {
		return fmt.Errorf("RECONCILE_WINDOW_DAYS must be positive")
	}
	if c.Bonus.RequiredApprovals < 1 {
		return fmt.Errorf("BONUS_REQUIRED_APPROVALS must be at least 1")
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
