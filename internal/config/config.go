package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database       DatabaseConfig
	JWT            JWTConfig
	App            AppConfig
	OAuthMicrosoft OAuthMicrosoftConfig
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
	// WeekStart picks the boundary for week-based hour rollups.
	// "sunday" (default) or "monday".
	WeekStart string
}

type OAuthMicrosoftConfig struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	RedirectURL  string
	Scopes       []string
	// BootstrapEmail is auto-provisioned as a manager account on its first
	// federated login; every other unregistered email is rejected.
	BootstrapEmail string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
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
		Name:     getEnv("DB_NAME", "timetrack"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	weekStart := strings.ToLower(getEnv("WEEK_START", "sunday"))
	if weekStart != "sunday" && weekStart != "monday" {
		return nil, fmt.Errorf("invalid WEEK_START: must be sunday or monday, got %q", weekStart)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		WeekStart:   weekStart,
	}

	// JWT configuration
	jwtRefreshExpiration := getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h")
	jwtAccessExpiration := getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h")

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: jwtRefreshExpiration,
		AccessExpiration:  jwtAccessExpiration,
	}

	// Microsoft OAuth2 configuration (Azure AD federated login)
	config.OAuthMicrosoft = OAuthMicrosoftConfig{
		ClientID:       getEnv("AZURE_CLIENT_ID", ""),
		ClientSecret:   getEnv("AZURE_CLIENT_SECRET", ""),
		TenantID:       getEnv("AZURE_TENANT_ID", "common"),
		RedirectURL:    getEnv("AZURE_REDIRECT_URL", ""),
		Scopes:         getEnvSlice("AZURE_SCOPES"),
		BootstrapEmail: getEnv("AZURE_BOOTSTRAP_EMAIL", ""),
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
	if c.OAuthMicrosoft.ClientID == "" {
		return fmt.Errorf("AZURE_CLIENT_ID is required")
	}
	if c.OAuthMicrosoft.ClientSecret == "" {
		return fmt.Errorf("AZURE_CLIENT_SECRET is required")
	}
	if c.OAuthMicrosoft.RedirectURL == "" {
		return fmt.Errorf("AZURE_REDIRECT_URL is required")
	}
	if len(c.OAuthMicrosoft.Scopes) == 0 {
		return fmt.Errorf("AZURE_SCOPES is required")
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

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
