package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level lumen.yaml configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gateway GatewayConfig `yaml:"gateway"`
}

// ServerConfig controls the HTTP facade.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// GatewayConfig controls the simulated backend.
type GatewayConfig struct {
	LatencyMS   int     `yaml:"latency_ms"`
	FailureRate float64 `yaml:"failure_rate"`
	Seed        int64   `yaml:"seed,omitempty"` // 0 = time-seeded randomness
}

// Latency returns the configured simulated delay as a duration.
func (g GatewayConfig) Latency() time.Duration {
	return time.Duration(g.LatencyMS) * time.Millisecond
}

// Load reads a lumen.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the reference simulation behavior.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Gateway: GatewayConfig{
			LatencyMS:   450,
			FailureRate: 0.12,
		},
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Gateway.FailureRate < 0 || c.Gateway.FailureRate > 1 {
		return fmt.Errorf("failure_rate must be within [0, 1], got %v", c.Gateway.FailureRate)
	}
	if c.Gateway.LatencyMS < 0 {
		return fmt.Errorf("latency_ms must not be negative, got %d", c.Gateway.LatencyMS)
	}
	return nil
}
