package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GridPath string // hcl file or directory
	// Vars overrides variable defaults, keyed by variable name.
	Vars map[string]string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	// WorkerCount bounds the number of renders running at once.
	WorkerCount int
	// RowWorkers bounds the number of rows each render builds at once.
	RowWorkers int
	// Progress shows a progress bar over all render rows.
	Progress bool
	// ListModules prints the available module types instead of rendering.
	ListModules bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" && !cfg.ListModules {
		return nil, errors.New("GridPath is a required configuration field and cannot be empty")
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", cfg.LogLevel)
	}
	if cfg.WorkerCount < 0 || cfg.RowWorkers < 0 {
		return nil, errors.New("worker counts must not be negative")
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid health check port %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
