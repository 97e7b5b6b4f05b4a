package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonandersen/stocksearch/internal/config"
	"github.com/jonandersen/stocksearch/pkg/stockapi"
)

// envFile is read from the working directory before STOCKSEARCH_* variables
// are applied.
const envFile = ".env"

// environment is what a command needs to talk to the backend.
type environment struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  *stockapi.Client
	closers []io.Closer
}

// newEnvironment resolves the configuration (flag > env > file > default),
// opens the log file and builds the API client. Callers must Close it.
func newEnvironment() (*environment, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closer, err := newLogger(cfg.LogFile, debugLog)
	if err != nil {
		return nil, err
	}

	client := stockapi.NewClient(cfg.BaseURL,
		stockapi.WithTimeout(cfg.RequestTimeout()),
		stockapi.WithUserAgent("stocksearch/"+Version),
		stockapi.WithLogger(logger),
	)

	logger.Debug("environment ready", "base_url", cfg.BaseURL, "timeout", cfg.RequestTimeout())

	return &environment{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		closers: []io.Closer{closer},
	}, nil
}

// Close releases the log file.
func (e *environment) Close() error {
	var firstErr error
	for _, c := range e.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func resolveConfigPath() string {
	if configFile != "" {
		return configFile
	}
	return config.ConfigPath()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if logFile != "" {
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns a text logger appending to path, or a discarding logger
// when path is empty. The terminal belongs to the UI, so logs never go to
// stdout or stderr.
func newLogger(path string, debug bool) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("pid", os.Getpid()), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
