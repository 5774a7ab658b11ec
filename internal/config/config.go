package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"

	IdentityProviderJWT           = "jwt"
	IdentityProviderGoogle        = "google"
	IdentityProviderGoogleIDToken = "google_id_token"
)

type Config struct {
	App          AppConfig
	Storage      StorageConfig
	Database     DatabaseConfig
	Identity     IdentityConfig
	JWT          JWTConfig
	OAuth2Google OAuth2GoogleConfig
	Business     BusinessConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
	RateLimit          string
}

type StorageConfig struct {
	Backend string
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type IdentityConfig struct {
	Provider string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// BusinessConfig holds the values that drive attendance, sales and dashboard figures.
type BusinessConfig struct {
	AttendanceLocation string
	SalesTaxRate       decimal.Decimal
	DailySalesTarget   decimal.Decimal
	CurrencySymbol     string
	CurrencyLocale     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
		RateLimit:          getEnv("RATE_LIMIT", "100-M"),
	}

	config.Storage = StorageConfig{
		Backend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendPostgres)),
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "workdesk"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		AutoMigrate: autoMigrate,
	}

	config.Identity = IdentityConfig{
		Provider: strings.ToLower(getEnv("IDENTITY_PROVIDER", IdentityProviderJWT)),
	}

	// JWT configuration
	accessExpiration, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: accessExpiration,
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	taxRate, err := decimal.NewFromString(getEnv("SALES_TAX_RATE", "0.11"))
	if err != nil {
		return nil, fmt.Errorf("invalid SALES_TAX_RATE: %w", err)
	}
	salesTarget, err := decimal.NewFromString(getEnv("DAILY_SALES_TARGET", "10000000"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_SALES_TARGET: %w", err)
	}

	config.Business = BusinessConfig{
		AttendanceLocation: getEnv("ATTENDANCE_LOCATION", "Head Office"),
		SalesTaxRate:       taxRate,
		DailySalesTarget:   salesTarget,
		CurrencySymbol:     getEnv("CURRENCY_SYMBOL", "Rp"),
		CurrencyLocale:     getEnv("CURRENCY_LOCALE", "id"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageBackendPostgres:
		if c.Database.Password == "" {
			return errors.New("DB_PASSWORD is required")
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.Storage.Backend)
	}

	switch c.Identity.Provider {
	case IdentityProviderJWT:
		if c.JWT.Secret == "" {
			return errors.New("JWT_SECRET_KEY is required")
		}
	case IdentityProviderGoogle:
		if c.OAuth2Google.ClientID == "" {
			return errors.New("CLIENT_ID is required")
		}
		if c.OAuth2Google.ClientSecret == "" {
			return errors.New("CLIENT_SECRET is required")
		}
	case IdentityProviderGoogleIDToken:
		if c.OAuth2Google.ClientID == "" {
			return errors.New("CLIENT_ID is required")
		}
	default:
		return fmt.Errorf("unsupported IDENTITY_PROVIDER %q", c.Identity.Provider)
	}

	if c.Business.SalesTaxRate.IsNegative() {
		return errors.New("SALES_TAX_RATE must not be negative")
	}
	if c.Business.DailySalesTarget.IsNegative() {
		return errors.New("DAILY_SALES_TARGET must not be negative")
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

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
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
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
