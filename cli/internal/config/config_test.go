package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "default", cfg.CurrentProfile)
	assert.NotNil(t, cfg.Profiles)
	assert.Empty(t, cfg.Profiles)

	p, err := cfg.GetProfile("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", p.URL)
	assert.Equal(t, DefaultNATSURL, p.NATSURL)
}

func TestLoad_NoConfigFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.CurrentProfile)
	assert.Empty(t, cfg.Profiles)
}

func TestLoad_WithConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `current_profile: ci
profiles:
  ci:
    url: http://10.0.0.5:8000
    nats_url: nats://10.0.0.5:4222
  local:
    url: http://127.0.0.1:8001
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "ci", cfg.CurrentProfile)
	assert.Equal(t, []string{"ci", "local"}, cfg.ProfileNames())

	p, err := cfg.GetProfile("")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", p.URL)
	assert.Equal(t, "nats://10.0.0.5:4222", p.NATSURL)

	p, err = cfg.GetProfile("local")
	require.NoError(t, err)
	assert.Empty(t, p.NATSURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("profiles: [unclosed"), 0o600))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestSaveProfile_RoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NoError(t, cfg.SaveProfile("staging", "http://staging:8000", "nats://staging:4222"))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "staging", reloaded.CurrentProfile)
	p, err := reloaded.GetProfile("staging")
	require.NoError(t, err)
	assert.Equal(t, "http://staging:8000", p.URL)
}

func TestGetProfile_Unknown(t *testing.T) {
	_, err := Default().GetProfile("missing")
	assert.Error(t, err)
}

func TestRemoveProfile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NoError(t, cfg.SaveProfile("ci", "http://ci:8000", ""))

	require.NoError(t, cfg.RemoveProfile("ci"))
	assert.Empty(t, cfg.CurrentProfile)
	assert.Error(t, cfg.RemoveProfile("ci"))
}
