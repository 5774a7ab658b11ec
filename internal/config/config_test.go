package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MemoryWithJWT(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("IDENTITY_PROVIDER", "jwt")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com")
	t.Setenv("SALES_TAX_RATE", "0.10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageBackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiration)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.App.CORSAllowedOrigins)
	assert.True(t, decimal.RequireFromString("0.1").Equal(cfg.Business.SalesTaxRate))
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("JWT_SECRET_KEY", "secret")

	t.Run("port", func(t *testing.T) {
		t.Setenv("APP_PORT", "eighty")
		_, err := Load()
		assert.ErrorContains(t, err, "APP_PORT")
	})
	t.Run("tax rate", func(t *testing.T) {
		t.Setenv("SALES_TAX_RATE", "eleven")
		_, err := Load()
		assert.ErrorContains(t, err, "SALES_TAX_RATE")
	})
	t.Run("expiration", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_ACCESS_EXPIRATION_TIME")
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Storage:  StorageConfig{Backend: StorageBackendPostgres},
			Database: DatabaseConfig{Password: "pw"},
			Identity: IdentityConfig{Provider: IdentityProviderJWT},
			JWT:      JWTConfig{Secret: "secret"},
			Business: BusinessConfig{SalesTaxRate: decimal.RequireFromString("0.11")},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "postgres without password", mutate: func(c *Config) { c.Database.Password = "" }, wantErr: "DB_PASSWORD"},
		{name: "memory without password", mutate: func(c *Config) {
			c.Storage.Backend = StorageBackendMemory
			c.Database.Password = ""
		}},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "redis" }, wantErr: "STORAGE_BACKEND"},
		{name: "jwt without secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "JWT_SECRET_KEY"},
		{name: "google without secret", mutate: func(c *Config) {
			c.Identity.Provider = IdentityProviderGoogle
			c.OAuth2Google.ClientID = "id"
		}, wantErr: "CLIENT_SECRET"},
		{name: "id token needs client id", mutate: func(c *Config) {
			c.Identity.Provider = IdentityProviderGoogleIDToken
		}, wantErr: "CLIENT_ID"},
		{name: "unknown provider", mutate: func(c *Config) { c.Identity.Provider = "saml" }, wantErr: "IDENTITY_PROVIDER"},
		{name: "negative tax", mutate: func(c *Config) {
			c.Business.SalesTaxRate = decimal.RequireFromString("-0.1")
		}, wantErr: "SALES_TAX_RATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
