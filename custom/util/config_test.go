package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600))
	return fileName
}

func TestGetConfMissingFileUsesDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD",
		"DATABASE_NAME", "DATABASE_SSLMODE", "DATABASE_REPLICAS", "HTTP_PORT", "GIN_MODE"} {
		t.Setenv(key, "")
	}
	serverConfig := ServerConfig{}
	conf, err := serverConfig.GetConf(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), *conf)
}

func TestGetConfYamlThenEnv(t *testing.T) {
	fileName := writeConfig(t, `
postgres:
  host: db.internal
  port: 6432
  database: orders
http:
  port: 9000
  read_timeout: 3s
gin_mode: debug
`)
	t.Setenv("DATABASE_HOST", "override.internal")
	t.Setenv("DATABASE_REPLICAS", "r1.internal,r2.internal")
	t.Setenv("HTTP_PORT", "not-a-number")

	serverConfig := ServerConfig{}
	_, err := serverConfig.GetConf(fileName)
	require.NoError(t, err)

	assert.Equal(t, "override.internal", serverConfig.Postgres.Host)
	assert.Equal(t, 6432, serverConfig.Postgres.Port)
	assert.Equal(t, "orders", serverConfig.Postgres.Database)
	assert.Equal(t, "postgres", serverConfig.Postgres.Username)
	assert.Equal(t, []string{"r1.internal", "r2.internal"}, serverConfig.Postgres.Replicas)
	assert.Equal(t, 9000, serverConfig.Http.Port)
	assert.Equal(t, 3*time.Second, serverConfig.Http.ReadTimeout)
	assert.Equal(t, 10*time.Second, serverConfig.Http.WriteTimeout)
	assert.Equal(t, "debug", serverConfig.GinMode)
}

func TestGetConfMalformedYaml(t *testing.T) {
	fileName := writeConfig(t, "postgres: [unterminated")

	serverConfig := ServerConfig{}
	_, err := serverConfig.GetConf(fileName)
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	dbConfig := DefaultServerConfig().Postgres
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=password dbname=order_management sslmode=disable",
		dbConfig.DSN())
}
