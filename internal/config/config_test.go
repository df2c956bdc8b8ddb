package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Screenshot.NavigationTimeout)
	assert.Equal(t, 10*time.Second, cfg.Screenshot.SelectorTimeout)
	assert.True(t, cfg.Screenshot.Headless)
}

func TestConfigPath_EnvOverride(t *testing.T) {
	t.Setenv("COMPKIT_CONFIG", "/tmp/custom/compkit.yaml")
	assert.Equal(t, "/tmp/custom/compkit.yaml", ConfigPath())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Port = "4010"
	cfg.Screenshot.NavigationTimeout = 45 * time.Second
	cfg.Catalog.ExtensionsDir = "/srv/components"
	require.NoError(t, cfg.SaveTo(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "4010", loaded.Server.Port)
	assert.Equal(t, 45*time.Second, loaded.Screenshot.NavigationTimeout)
	assert.Equal(t, "/srv/components", loaded.Catalog.ExtensionsDir)
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9000\"\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 1280, cfg.Screenshot.DefaultWidth)
	assert.Equal(t, 5, cfg.Clone.MaxIterations)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COMPKIT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PORT", "8081")
	t.Setenv("COMPKIT_API_URL", "http://api.internal:8081")
	t.Setenv("COMPKIT_HEADLESS", "false")
	t.Setenv("COMPKIT_NAV_TIMEOUT", "5s")
	t.Setenv("COMPKIT_CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "http://api.internal:8081", cfg.APIURL)
	assert.False(t, cfg.Screenshot.Headless)
	assert.Equal(t, 5*time.Second, cfg.Screenshot.NavigationTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_InvalidEnvFailsValidation(t *testing.T) {
	t.Setenv("COMPKIT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("COMPKIT_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"empty api url", func(c *Config) { c.APIURL = "" }},
		{"zero navigation timeout", func(c *Config) { c.Screenshot.NavigationTimeout = 0 }},
		{"negative selector timeout", func(c *Config) { c.Screenshot.SelectorTimeout = -time.Second }},
		{"zero width", func(c *Config) { c.Screenshot.DefaultWidth = 0 }},
		{"zero cache", func(c *Config) { c.Screenshot.CacheSize = 0 }},
		{"zero iterations", func(c *Config) { c.Clone.MaxIterations = 0 }},
		{"zero client timeout", func(c *Config) { c.ClientTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestServerAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:3001", ServerConfig{Host: "127.0.0.1", Port: "3001"}.Addr())
	assert.Equal(t, ":3001", ServerConfig{Port: "3001"}.Addr())
}
