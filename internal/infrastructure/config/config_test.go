package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"BOOKHUB_APP_NAME":          os.Getenv("BOOKHUB_APP_NAME"),
		"BOOKHUB_APP_ENV":           os.Getenv("BOOKHUB_APP_ENV"),
		"BOOKHUB_APP_PORT":          os.Getenv("BOOKHUB_APP_PORT"),
		"BOOKHUB_DATABASE_HOST":     os.Getenv("BOOKHUB_DATABASE_HOST"),
		"BOOKHUB_DATABASE_PORT":     os.Getenv("BOOKHUB_DATABASE_PORT"),
		"BOOKHUB_DATABASE_PASSWORD": os.Getenv("BOOKHUB_DATABASE_PASSWORD"),
		"BOOKHUB_DATABASE_SSLMODE":  os.Getenv("BOOKHUB_DATABASE_SSLMODE"),
		"BOOKHUB_STRIPE_SECRET_KEY": os.Getenv("BOOKHUB_STRIPE_SECRET_KEY"),
		"BOOKHUB_STRIPE_CURRENCY":   os.Getenv("BOOKHUB_STRIPE_CURRENCY"),
		"BOOKHUB_SEED_ENABLED":      os.Getenv("BOOKHUB_SEED_ENABLED"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "bookhub-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "bookhub", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "usd", cfg.Stripe.Currency)
		assert.False(t, cfg.Seed.Enabled)
	})

	t.Run("loads values from environment variables with BOOKHUB prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("BOOKHUB_APP_NAME", "test-app")
		os.Setenv("BOOKHUB_APP_PORT", "9000")
		os.Setenv("BOOKHUB_DATABASE_HOST", "testdb.local")
		os.Setenv("BOOKHUB_STRIPE_CURRENCY", "eur")
		os.Setenv("BOOKHUB_SEED_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, "eur", cfg.Stripe.Currency)
		assert.True(t, cfg.Seed.Enabled)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setenv := func(t *testing.T, key, value string) {
		t.Setenv(key, value)
	}

	t.Run("production requires database password", func(t *testing.T) {
		setenv(t, "BOOKHUB_APP_ENV", "production")
		setenv(t, "BOOKHUB_DATABASE_PASSWORD", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("production rejects sslmode disable", func(t *testing.T) {
		setenv(t, "BOOKHUB_APP_ENV", "production")
		setenv(t, "BOOKHUB_DATABASE_PASSWORD", "secret")
		setenv(t, "BOOKHUB_DATABASE_SSLMODE", "disable")
		setenv(t, "BOOKHUB_STRIPE_SECRET_KEY", "sk_live_x")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("production requires stripe secret key", func(t *testing.T) {
		setenv(t, "BOOKHUB_APP_ENV", "production")
		setenv(t, "BOOKHUB_DATABASE_PASSWORD", "secret")
		setenv(t, "BOOKHUB_DATABASE_SSLMODE", "require")
		setenv(t, "BOOKHUB_STRIPE_SECRET_KEY", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stripe.secret_key")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5432,
		User:     "bookhub",
		Password: "p@ss/word",
		DBName:   "bookhub",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "db.example.com:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in credentials must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
