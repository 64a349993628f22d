package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDatabaseConfigMapsConnectionSettings(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     5433,
			User:     "portfolio",
			Password: "s3cret",
			Database: "portfolio_prod",
			SSLMode:  "require",
		},
	}

	dbConfig, err := LoadDatabaseConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", dbConfig.Host)
	assert.Equal(t, 5433, dbConfig.Port)
	assert.Equal(t, "portfolio", dbConfig.Username)
	assert.Equal(t, "s3cret", dbConfig.Password)
	assert.Equal(t, "portfolio_prod", dbConfig.DBName)
	assert.Equal(t, "require", dbConfig.SSLMode)
}

func TestLoadDatabaseConfigPoolDefaults(t *testing.T) {
	dbConfig, err := LoadDatabaseConfig(&Config{})
	require.NoError(t, err)

	assert.Equal(t, int32(25), dbConfig.MaxConns)
	assert.Equal(t, int32(5), dbConfig.MinConns)
	assert.Equal(t, 5*time.Minute, dbConfig.MaxConnLifetime)
	assert.Equal(t, 5, dbConfig.MaxRetries)
	assert.Equal(t, time.Second, dbConfig.RetryDelay)
	assert.Equal(t, 10*time.Second, dbConfig.ConnectTimeout)
}
