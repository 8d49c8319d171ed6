package config

import (
	"fmt"
	"time"

	"github.com/teampulse/teampulse/internal/env"
)

// ServerConfig holds all configuration for the server binary.
type ServerConfig struct {
	Database        DatabaseConfig
	HTTP            HTTPConfig
	Sprint          SprintConfig
	Export          ExportConfig
	Observability   ObservabilityConfig
	ShutdownTimeout time.Duration `env:"TP_SHUTDOWN_TIMEOUT"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Host              string        `env:"TP_HTTP_HOST"`
	Port              string        `env:"TP_HTTP_PORT"`
	ReadTimeout       time.Duration `env:"TP_HTTP_READ_TIMEOUT"`
	WriteTimeout      time.Duration `env:"TP_HTTP_WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `env:"TP_HTTP_IDLE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `env:"TP_HTTP_READ_HEADER_TIMEOUT"`
	MaxHeaderBytes    int           `env:"TP_HTTP_MAX_HEADER_BYTES"`
}

// ObservabilityConfig holds observability configuration.
type ObservabilityConfig struct {
	OTelEnabled bool   `env:"TP_OTEL_ENABLED"`
	ServiceName string `env:"OTEL_SERVICE_NAME"`
}

// LoadServerConfig loads and validates server configuration from environment.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if err := env.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *ServerConfig) applyDefaults() {
	if c.HTTP.Port == "" {
		c.HTTP.Port = "8080"
	}
	if c.HTTP.ReadTimeout <= 0 {
		c.HTTP.ReadTimeout = 15 * time.Second
	}
	if c.HTTP.WriteTimeout <= 0 {
		c.HTTP.WriteTimeout = 15 * time.Second
	}
	if c.HTTP.IdleTimeout <= 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.HTTP.ReadHeaderTimeout <= 0 {
		c.HTTP.ReadHeaderTimeout = 5 * time.Second
	}
	if c.HTTP.MaxHeaderBytes <= 0 {
		c.HTTP.MaxHeaderBytes = 1 << 20
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "teampulse"
	}
	c.Sprint.applyDefaults()
	c.Export.applyDefaults()
}
