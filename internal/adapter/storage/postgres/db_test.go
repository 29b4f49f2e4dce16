package postgres

import (
	"testing"
	"time"

	"wellness-dispatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "db.internal",
		Port:            5433,
		User:            "dispatch",
		Password:        "pw",
		DBName:          "wellness_dispatch",
		SSLMode:         "disable",
		MaxConns:        12,
		MinConns:        3,
		ConnMaxLifetime: 20 * time.Minute,
	}
}

func TestPoolConfig(t *testing.T) {
	poolCfg, err := poolConfig(testDatabaseConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(12), poolCfg.MaxConns)
	assert.Equal(t, int32(3), poolCfg.MinConns)
	assert.Equal(t, 20*time.Minute, poolCfg.MaxConnLifetime)
	assert.Equal(t, "db.internal", poolCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), poolCfg.ConnConfig.Port)
	assert.Equal(t, "wellness_dispatch", poolCfg.ConnConfig.Database)
	assert.Equal(t, "wellness-dispatch", poolCfg.ConnConfig.RuntimeParams["application_name"])
}

func TestPoolConfig_MinConnsAboveMaxIgnored(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.MinConns = 50

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(12), poolCfg.MaxConns)
	assert.Zero(t, poolCfg.MinConns)
}

func TestPoolConfig_InvalidDSN(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.SSLMode = "sometimes"

	_, err := poolConfig(cfg)
	assert.ErrorContains(t, err, "parsing database config")
}
