package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"compkit/internal/logging"
	"compkit/pkg/fileops"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "compkit" // application name used for config directory

// Config holds the configuration shared by the HTTP API, the MCP server and the CLI.
type Config struct {
	Version     string           `yaml:"version"`
	LogLevel    string           `yaml:"log_level"`
	Server      ServerConfig     `yaml:"server"`
	APIURL      string           `yaml:"api_url"`
	CORSOrigins []string         `yaml:"cors_origins"`
	Screenshot  ScreenshotConfig `yaml:"screenshot"`
	Catalog     CatalogConfig    `yaml:"catalog"`
	Clone       CloneConfig      `yaml:"clone"`

	// ClientTimeout bounds every MCP -> API request.
	ClientTimeout time.Duration `yaml:"client_timeout"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// ScreenshotConfig controls the headless browser used for captures.
type ScreenshotConfig struct {
	ChromePath        string        `yaml:"chrome_path"`
	Headless          bool          `yaml:"headless"`
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`
	SelectorTimeout   time.Duration `yaml:"selector_timeout"`
	DefaultWidth      int           `yaml:"default_width"`
	DefaultHeight     int           `yaml:"default_height"`
	CacheSize         int           `yaml:"cache_size"`
}

// CatalogConfig points at optional component extensions.
type CatalogConfig struct {
	ExtensionsDir string `yaml:"extensions_dir"`
}

// CloneConfig tunes the clone-frontend workflow.
type CloneConfig struct {
	MaxIterations int `yaml:"max_iterations"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Version:  "1.0",
		LogLevel: "warn",
		Server: ServerConfig{
			Host: "",
			Port: "3001",
		},
		APIURL:      "http://localhost:3001",
		CORSOrigins: []string{"*"},
		Screenshot: ScreenshotConfig{
			Headless:          true,
			NavigationTimeout: 30 * time.Second,
			SelectorTimeout:   10 * time.Second,
			DefaultWidth:      1280,
			DefaultHeight:     800,
			CacheSize:         32,
		},
		Clone: CloneConfig{
			MaxIterations: 5,
		},
		ClientTimeout: 15 * time.Second,
	}
}

// ConfigPath returns the config file path. COMPKIT_CONFIG overrides the XDG location.
func ConfigPath() string {
	if p := os.Getenv("COMPKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// Load builds the effective configuration: defaults, then the YAML file if
// present, then .env and environment overrides. The result is validated.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file found, using environment variables")
	}

	path := ConfigPath()
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		loaded, err := LoadFrom(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	} else {
		logging.Debug("No config file, using defaults", "path", path)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadFrom loads config from a specific path on top of the defaults.
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Host = getEnv("COMPKIT_HOST", c.Server.Host)
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Port = getEnv("COMPKIT_PORT", c.Server.Port)
	c.APIURL = getEnv("COMPKIT_API_URL", c.APIURL)
	c.LogLevel = getEnv("COMPKIT_LOG_LEVEL", c.LogLevel)
	c.Catalog.ExtensionsDir = getEnv("COMPKIT_EXTENSIONS_DIR", c.Catalog.ExtensionsDir)
	c.Screenshot.ChromePath = getEnv("COMPKIT_CHROME_PATH", c.Screenshot.ChromePath)
	c.Screenshot.Headless = getEnvBool("COMPKIT_HEADLESS", c.Screenshot.Headless)
	c.Screenshot.NavigationTimeout = getEnvDuration("COMPKIT_NAV_TIMEOUT", c.Screenshot.NavigationTimeout)
	c.Screenshot.SelectorTimeout = getEnvDuration("COMPKIT_SELECTOR_TIMEOUT", c.Screenshot.SelectorTimeout)
	c.Clone.MaxIterations = getEnvInt("COMPKIT_MAX_ITERATIONS", c.Clone.MaxIterations)

	if origins, ok := os.LookupEnv("COMPKIT_CORS_ORIGINS"); ok {
		var list []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		c.CORSOrigins = list
	}
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server port must be numeric: %q", c.Server.Port)
	}
	if c.APIURL == "" {
		return fmt.Errorf("api_url cannot be empty")
	}
	if c.Screenshot.NavigationTimeout <= 0 {
		return fmt.Errorf("screenshot navigation_timeout must be > 0")
	}
	if c.Screenshot.SelectorTimeout <= 0 {
		return fmt.Errorf("screenshot selector_timeout must be > 0")
	}
	if c.Screenshot.DefaultWidth <= 0 || c.Screenshot.DefaultHeight <= 0 {
		return fmt.Errorf("screenshot default dimensions must be > 0")
	}
	if c.Screenshot.CacheSize <= 0 {
		return fmt.Errorf("screenshot cache_size must be > 0")
	}
	if c.Clone.MaxIterations <= 0 {
		return fmt.Errorf("clone max_iterations must be > 0")
	}
	if c.ClientTimeout <= 0 {
		return fmt.Errorf("client_timeout must be > 0")
	}
	return nil
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to a specific path with restrictive permissions (600)
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := fileops.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
