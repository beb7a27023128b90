package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

func TestRead_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	var cfg testConfig
	require.NoError(t, Read(NewViper("CFGTEST", ""), &cfg))

	assert.Equal(t, DefaultURL, cfg.Server.URL)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  url: http://localhost:9000
  cors_origins:
    - "*"
logging:
  level: debug
`), 0o644))

	var cfg testConfig
	require.NoError(t, Read(NewViper("CFGTEST", path), &cfg))

	assert.Equal(t, "http://localhost:9000", cfg.Server.URL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
}

func TestRead_MissingExplicitFile(t *testing.T) {
	var cfg testConfig
	err := Read(NewViper("CFGTEST", filepath.Join(t.TempDir(), "nope.yaml")), &cfg)
	assert.Error(t, err)
}

func TestRead_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CFGTEST_SERVER_URL", "http://0.0.0.0:8123")
	t.Setenv("CFGTEST_LOGGING_FORMAT", "json")

	var cfg testConfig
	require.NoError(t, Read(NewViper("CFGTEST", ""), &cfg))

	assert.Equal(t, "http://0.0.0.0:8123", cfg.Server.URL)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		url      string
		expected string
		wantErr  bool
	}{
		{url: "http://127.0.0.1:8000", expected: "127.0.0.1:8000"},
		{url: "http://localhost", expected: "localhost:80"},
		{url: "https://example.com/", expected: "example.com:443"},
		{url: "http://[::1]:9000", expected: "[::1]:9000"},
		{url: "127.0.0.1:8000", wantErr: true},
		{url: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			addr, err := ServerConfig{URL: tt.url}.Addr()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestServerConfig_BaseURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8000", ServerConfig{URL: "http://127.0.0.1:8000/"}.BaseURL())
}
