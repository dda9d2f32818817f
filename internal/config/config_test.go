package config_test

import (
	"os"
	"path/filepath"
	"recon/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.Lookup.Timeout)
	require.Equal(t, "json", cfg.Lookup.DNSMode)
	require.Equal(t, "https://api.xposedornot.com", cfg.Lookup.BreachBaseURL)
	require.Equal(t, time.Hour, cfg.News.RefreshInterval)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
lookup:
  dnsMode: wire
  timeout: 3s
news:
  apiKey: from-file
`), 0o600))
	t.Setenv("NEWS_API_KEY", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "wire", cfg.Lookup.DNSMode)
	require.Equal(t, 3*time.Second, cfg.Lookup.Timeout)
	require.Equal(t, "from-env", cfg.News.APIKey)
	require.Equal(t, "recon", cfg.Database.DatabaseName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
