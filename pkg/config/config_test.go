package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.Simulation.OperationalFeePct.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, cfg.Simulation.LiquidationStockThreshold.Equal(decimal.NewFromInt(50)))
	assert.True(t, cfg.Simulation.HighDiscountPct.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SIM_OPERATIONAL_FEE_PCT", "3.75")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL_SECONDS", "5")

	v := viper.New()
	v.AutomaticEnv()
	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Simulation.OperationalFeePct.Equal(decimal.RequireFromString("3.75")))
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Second, cfg.Redis.TTL)
}

func TestLoad_ErroresDeValidacion(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "mysql")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("SIM_OPERATIONAL_FEE_PCT", "NaN")
	_, err = fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("SIM_OPERATIONAL_FEE_PCT", "120")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "appareldesk", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/appareldesk?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
