package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the config directory.
	AppName = "stocksearch"

	// DefaultBaseURL is where the stock data backend listens by default.
	DefaultBaseURL = "http://localhost:3000"

	// DefaultRequestTimeoutSeconds bounds a single lookup.
	DefaultRequestTimeoutSeconds = 30
)

// Environment variables that override the config file.
const (
	EnvBaseURL        = "STOCKSEARCH_BASE_URL"
	EnvRequestTimeout = "STOCKSEARCH_REQUEST_TIMEOUT"
	EnvLogFile        = "STOCKSEARCH_LOG_FILE"
)

// Config holds the CLI configuration.
type Config struct {
	BaseURL               string `yaml:"base_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	LogFile               string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns a config with every default applied.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:               DefaultBaseURL,
		RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/stocksearch, or ~/.config/stocksearch.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads the config at path. A missing file yields the defaults, and any
// key absent from the file keeps its default. An explicit
// request_timeout_seconds of 0 is kept and means no timeout.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// LoadEnvFile loads KEY=value pairs from a .env file into the process
// environment without replacing variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overrides cfg with any STOCKSEARCH_* variables that are set.
func (c *Config) ApplyEnv() error {
	if val := os.Getenv(EnvBaseURL); val != "" {
		c.BaseURL = val
	}
	if val := os.Getenv(EnvRequestTimeout); val != "" {
		secs, err := strconv.Atoi(strings.TrimSuffix(val, "s"))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRequestTimeout, val, err)
		}
		c.RequestTimeoutSeconds = secs
	}
	if val := os.Getenv(EnvLogFile); val != "" {
		c.LogFile = val
	}
	return nil
}

// RequestTimeout returns the lookup timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Validate checks that the config can be used to reach the backend.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", c.BaseURL)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	return nil
}
