package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the fraud prediction API
type Config struct {
	// Server configuration
	HTTPPort int    `env:"FRAUD_HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Model backend configuration
	Model ModelConfig

	// Scaler artifact configuration
	ScalerPath string `env:"FRAUD_SCALER_PATH" envDefault:"scaler.json"`

	// Decision threshold: probabilities strictly above this are fraud
	Threshold float64 `env:"FRAUD_THRESHOLD" envDefault:"0.95"`

	// Timeouts
	ShutdownTimeout time.Duration `env:"FRAUD_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// ModelConfig holds inference backend configuration
type ModelConfig struct {
	// URL of the model server's infer endpoint. No default: when empty,
	// prediction requests fail with a configuration error.
	URL string `env:"FRAUD_MODEL_URL"`

	// Request timeout for a single inference call
	RequestTimeout time.Duration `env:"FRAUD_MODEL_TIMEOUT" envDefault:"10s"`

	// InsecureTLS skips certificate verification against the backend.
	// Intended for internal model servers presenting self-signed
	// certificates on a private network; off by default.
	InsecureTLS bool `env:"FRAUD_MODEL_INSECURE_TLS" envDefault:"false"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("fraud threshold must be in [0,1], got %g", c.Threshold)
	}

	if c.ScalerPath == "" {
		return fmt.Errorf("scaler path is required")
	}

	if c.Model.RequestTimeout <= 0 {
		return fmt.Errorf("model request timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
