package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "data/symbols.csv", cfg.Catalog.Path)
	assert.Equal(t, 10, cfg.FetchTimeoutSeconds)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen_addr: ":9090"
data_source:
  base_url: "http://bars.local"
  api_key: "secret"
catalog:
  path: "ref/equities.csv"
fetch_timeout_seconds: 5
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, "http://bars.local", cfg.DataSource.BaseURL)
	assert.Equal(t, "secret", cfg.DataSource.APIKey)
	assert.Equal(t, "ref/equities.csv", cfg.Catalog.Path)
	assert.Equal(t, 5, cfg.FetchTimeoutSeconds)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("BARS_BASE_URL", "http://gateway.local")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "3")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.ListenAddr)
	assert.Equal(t, "http://gateway.local", cfg.DataSource.BaseURL)
	assert.Equal(t, 3, cfg.FetchTimeoutSeconds)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Server.ListenAddr = ":8080"
	cfg.FetchTimeoutSeconds = -1
	assert.Error(t, cfg.Validate())

	cfg.FetchTimeoutSeconds = 10
	assert.NoError(t, cfg.Validate())

	cfg.Server.ListenAddr = ""
	assert.Error(t, cfg.Validate())
}
