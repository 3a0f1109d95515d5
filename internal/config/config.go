// Package config loads the server configuration from an optional JSON file
// with environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds the server settings. Durations are stored in milliseconds
// in the JSON file, matching the latency range the simulation uses.
type Config struct {
	Addr          string  `json:"addr"`
	DBPath        string  `json:"db_path,omitempty"`
	MinLatencyMS  int     `json:"min_latency_ms"`
	MaxLatencyMS  int     `json:"max_latency_ms"`
	FailRate      float64 `json:"fail_rate"`
	ReorderRate   float64 `json:"reorder_rate"`
	DisableFaults bool    `json:"disable_faults,omitempty"`
}

// Default returns the configuration used when no file or overrides exist:
// the original simulation's latency and failure rates.
func Default() *Config {
	return &Config{
		Addr:         ":8080",
		MinLatencyMS: 200,
		MaxLatencyMS: 1200,
		FailRate:     0.05,
		ReorderRate:  0.10,
	}
}

// DefaultPath returns ~/.talentflow/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".talentflow", "config.json"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies TALENTFLOW_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// Save writes the config file, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// MinLatency returns the lower latency bound as a duration.
func (c *Config) MinLatency() time.Duration {
	return time.Duration(c.MinLatencyMS) * time.Millisecond
}

// MaxLatency returns the upper latency bound as a duration.
func (c *Config) MaxLatency() time.Duration {
	return time.Duration(c.MaxLatencyMS) * time.Millisecond
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TALENTFLOW_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TALENTFLOW_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TALENTFLOW_FAIL_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FailRate = rate
		}
	}
	if v := os.Getenv("TALENTFLOW_REORDER_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.ReorderRate = rate
		}
	}
	if v := os.Getenv("TALENTFLOW_DISABLE_FAULTS"); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil {
			cfg.DisableFaults = disabled
		}
	}
}
