package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_NonExistent(t *testing.T) {
	// When config file doesn't exist, should return defaults
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.RequestTimeoutSeconds != DefaultRequestTimeoutSeconds {
		t.Errorf("RequestTimeoutSeconds = %d, want %d", cfg.RequestTimeoutSeconds, DefaultRequestTimeoutSeconds)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `base_url: "https://stocks.example.com"
request_timeout_seconds: 10
log_file: "/tmp/stocksearch.log"
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.BaseURL != "https://stocks.example.com" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "https://stocks.example.com")
	}
	if cfg.RequestTimeoutSeconds != 10 {
		t.Errorf("RequestTimeoutSeconds = %d, want %d", cfg.RequestTimeoutSeconds, 10)
	}
	if cfg.LogFile != "/tmp/stocksearch.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "/tmp/stocksearch.log")
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	// Config with only some fields should use defaults for missing
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `log_file: "debug.log"
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.RequestTimeoutSeconds != DefaultRequestTimeoutSeconds {
		t.Errorf("RequestTimeoutSeconds = %d, want default %d", cfg.RequestTimeoutSeconds, DefaultRequestTimeoutSeconds)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `invalid: yaml: content: [broken`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() error = nil, want error for invalid YAML")
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := &Config{
		BaseURL:               "https://save.example.com",
		RequestTimeoutSeconds: 45,
	}

	if err := Save(configPath, cfg); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Failed to stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Config file permissions = %o, want %o", perm, 0600)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() after Save() error = %v", err)
	}

	if loaded.BaseURL != cfg.BaseURL {
		t.Errorf("BaseURL = %q, want %q", loaded.BaseURL, cfg.BaseURL)
	}
	if loaded.RequestTimeoutSeconds != cfg.RequestTimeoutSeconds {
		t.Errorf("RequestTimeoutSeconds = %d, want %d", loaded.RequestTimeoutSeconds, cfg.RequestTimeoutSeconds)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "deep", "config.yaml")

	if err := Save(configPath, DefaultConfig()); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("Config file not created: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Errorf("RequestTimeout() = %v, want %v", cfg.RequestTimeout(), 30*time.Second)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestConfigDir_WithXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	want := "/custom/config/stocksearch"
	if dir := ConfigDir(); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestConfigDir_WithoutXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".config", "stocksearch")
	if dir := ConfigDir(); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestConfigPath_WithXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	want := "/custom/config/stocksearch/config.yaml"
	if path := ConfigPath(); path != want {
		t.Errorf("ConfigPath() = %q, want %q", path, want)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://env.example.com")
	t.Setenv(EnvRequestTimeout, "5s")
	t.Setenv(EnvLogFile, "/var/log/stocksearch.log")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.RequestTimeoutSeconds != 5 {
		t.Errorf("RequestTimeoutSeconds = %d, want 5", cfg.RequestTimeoutSeconds)
	}
	if cfg.LogFile != "/var/log/stocksearch.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestApplyEnv_InvalidTimeout(t *testing.T) {
	t.Setenv(EnvRequestTimeout, "soon")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("ApplyEnv() error = nil, want error for invalid timeout")
	}
}

func TestLoadEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(envPath, []byte("STOCKSEARCH_BASE_URL=http://dotenv.local:3000\n"), 0600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	// Registers cleanup, then clears so godotenv is free to set it.
	t.Setenv(EnvBaseURL, "")
	os.Unsetenv(EnvBaseURL)

	if err := LoadEnvFile(envPath); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv(EnvBaseURL); got != "http://dotenv.local:3000" {
		t.Errorf("%s = %q, want value from .env", EnvBaseURL, got)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadEnvFile() error = %v, want nil for missing file", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", *DefaultConfig(), false},
		{"https", Config{BaseURL: "https://stocks.example.com"}, false},
		{"no scheme", Config{BaseURL: "localhost:3000"}, true},
		{"ftp", Config{BaseURL: "ftp://example.com"}, true},
		{"no host", Config{BaseURL: "http://"}, true},
		{"negative timeout", Config{BaseURL: DefaultBaseURL, RequestTimeoutSeconds: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoad_ZeroTimeoutRoundTrips(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.RequestTimeoutSeconds = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
	if err := Save(configPath, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.RequestTimeoutSeconds != 0 {
		t.Errorf("RequestTimeoutSeconds = %d, want 0", loaded.RequestTimeoutSeconds)
	}
	if loaded.RequestTimeout() != 0 {
		t.Errorf("RequestTimeout() = %v, want 0", loaded.RequestTimeout())
	}
}

func TestLoad_ExplicitZeroTimeout(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("request_timeout_seconds: 0\n"), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.RequestTimeoutSeconds != 0 {
		t.Errorf("RequestTimeoutSeconds = %d, want 0", cfg.RequestTimeoutSeconds)
	}
}
