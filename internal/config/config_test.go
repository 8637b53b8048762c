package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/fenestra/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, config.DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "QT", cfg.Quotation.NumberPrefix)
	assert.InDelta(t, 0.18, cfg.Quotation.GSTRate, 1e-12)
	assert.Equal(t, 5*time.Minute, cfg.DB.MaxLifetime)
	assert.Equal(t, "postgres://postgres:@localhost:5432/fenestra?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "dynamodb")
	t.Setenv("QUOTATION_GST_RATE", "0.12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverDynamo, cfg.Store.Driver)
	assert.InDelta(t, 0.12, cfg.Quotation.GSTRate, 1e-12)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "UnknownDriver", key: "STORE_DRIVER", val: "sqlite"},
		{name: "NegativeGST", key: "QUOTATION_GST_RATE", val: "-0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
