package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the tunables of the punch pipeline.
type AttendanceConfig struct {
	BiometricThreshold  float64
	MinReportLength     int
	DefaultRadiusMeters float64
}

func Load() (*Config, error) {
	// A missing .env just means the process environment is the only source.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "worknai-hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	biometricThreshold, err := strconv.ParseFloat(getEnv("BIOMETRIC_MATCH_THRESHOLD", "0.55"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BIOMETRIC_MATCH_THRESHOLD: %w", err)
	}
	minReportLength, err := strconv.Atoi(getEnv("ATTENDANCE_MIN_REPORT_LENGTH", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_MIN_REPORT_LENGTH: %w", err)
	}
	defaultRadius, err := strconv.ParseFloat(getEnv("DEFAULT_GEOFENCE_RADIUS_METERS", "3000"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_GEOFENCE_RADIUS_METERS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		BiometricThreshold:  biometricThreshold,
		MinReportLength:     minReportLength,
		DefaultRadiusMeters: defaultRadius,
	}

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
	if c.Attendance.BiometricThreshold <= 0 {
		return fmt.Errorf("BIOMETRIC_MATCH_THRESHOLD must be greater than zero")
	}
	if c.Attendance.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("DEFAULT_GEOFENCE_RADIUS_METERS must be greater than zero")
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
