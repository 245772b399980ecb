package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 7*24*60, cfg.JWT.CustomerExpiration)
	assert.True(t, cfg.DB.UseTransactions)
	assert.False(t, cfg.Sheets.Enabled())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MONGODB_USE_TRANSACTIONS", "false")
	t.Setenv("APP_PUBLIC_URL", "https://tienda.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.UseTransactions)
	assert.Equal(t, "https://tienda.example.com", cfg.App.PublicURL)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{Env: "production"},
		DB:   DBConfig{Driver: DriverMongo},
		HTTP: HTTPConfig{Port: 8080},
	}
	assert.Error(t, cfg.Validate(), "sin JWT_SECRET en producción debe fallar")

	cfg.JWT.Secret = "s3cret"
	assert.NoError(t, cfg.Validate())

	cfg.DB.Driver = "postgres"
	assert.Error(t, cfg.Validate())
}
