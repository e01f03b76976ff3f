package database

import (
	"testing"
	"time"

	"car-rental/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfigFromSettings(t *testing.T) {
	cfg, err := PoolConfig(utils.DatabaseConfig{
		Host:              "db.internal",
		Port:              "6543",
		Name:              "rental",
		User:              "app",
		Password:          `se cret'\x`,
		SSLMode:           "require",
		MaxConns:          20,
		MinConns:          4,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   10 * time.Minute,
		HealthCheckPeriod: 30 * time.Second,
		ConnectTimeout:    2 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(6543), cfg.ConnConfig.Port)
	assert.Equal(t, "rental", cfg.ConnConfig.Database)
	assert.Equal(t, "app", cfg.ConnConfig.User)
	assert.Equal(t, `se cret'\x`, cfg.ConnConfig.Password)
	assert.NotNil(t, cfg.ConnConfig.TLSConfig)
	assert.Equal(t, int32(20), cfg.MaxConns)
	assert.Equal(t, int32(4), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, 10*time.Minute, cfg.MaxConnIdleTime)
	assert.Equal(t, 30*time.Second, cfg.HealthCheckPeriod)
	assert.Equal(t, 2*time.Second, cfg.ConnConfig.ConnectTimeout)
}

func TestPoolConfigKeepsDefaults(t *testing.T) {
	cfg, err := PoolConfig(utils.DatabaseConfig{Host: "localhost", Port: "5432", Name: "rental", User: "app"})
	require.NoError(t, err)

	assert.Nil(t, cfg.ConnConfig.TLSConfig)
	assert.Positive(t, cfg.MaxConns)
	assert.Positive(t, cfg.MaxConnLifetime)
	assert.Positive(t, cfg.HealthCheckPeriod)
}

func TestPoolConfigIgnoresMinAboveMax(t *testing.T) {
	cfg, err := PoolConfig(utils.DatabaseConfig{Host: "localhost", Port: "5432", MaxConns: 3, MinConns: 8})
	require.NoError(t, err)

	assert.Equal(t, int32(3), cfg.MaxConns)
	assert.LessOrEqual(t, cfg.MinConns, cfg.MaxConns)
}
