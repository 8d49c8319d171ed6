package config

import (
	"fmt"
	"time"

	"github.com/teampulse/teampulse/internal/env"
)

// WorkerConfig holds all configuration for the worker binary.
type WorkerConfig struct {
	Database DatabaseConfig
	Sprint   SprintConfig
	Export   ExportConfig

	// RefreshInterval is how often the persisted sprint settings row
	// is checked for staleness.
	RefreshInterval time.Duration `env:"TP_WORKER_REFRESH_INTERVAL"`

	// ExportInterval is how often a company-wide capacity snapshot is
	// written to the export sink.
	ExportInterval time.Duration `env:"TP_WORKER_EXPORT_INTERVAL"`

	// OperationTimeout bounds a single worker cycle.
	OperationTimeout time.Duration `env:"TP_WORKER_OPERATION_TIMEOUT"`
}

// LoadWorkerConfig loads and validates worker configuration from environment.
func LoadWorkerConfig() (*WorkerConfig, error) {
	cfg := &WorkerConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load worker config: %w", err)
	}

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 1 * time.Hour
	}
	if cfg.ExportInterval <= 0 {
		cfg.ExportInterval = 24 * time.Hour
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 30 * time.Second
	}
	cfg.Sprint.applyDefaults()
	cfg.Export.applyDefaults()

	return cfg, nil
}
