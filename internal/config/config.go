// Package config loads the local client configuration: which worker
// this machine clocks for, the default work mode, and where the
// database lives. Environment variables override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sirapatk/clockwise/internal/domain"
)

const configFileName = "config.yaml"

// Config is the on-disk client configuration.
type Config struct {
	WorkerID    string `yaml:"worker_id"`
	DefaultMode string `yaml:"default_mode"`
	DBPath      string `yaml:"db_path"`
}

// Default returns the configuration used before anything is saved.
func Default() Config {
	return Config{DefaultMode: domain.ModeOffice}
}

// Load reads ~/.clockwise/config.yaml, falling back to defaults when
// the file does not exist, then applies CLOCKWISE_DB and
// CLOCKWISE_WORKER overrides.
func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config yaml: %w", err)
	}

	if cfg.DefaultMode == "" {
		cfg.DefaultMode = domain.ModeOffice
	}
	if v := os.Getenv("CLOCKWISE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CLOCKWISE_WORKER"); v != "" {
		cfg.WorkerID = v
	}
	return cfg, nil
}

// Save writes the configuration back to ~/.clockwise/config.yaml.
func Save(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	serialized, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ResolveDBPath returns the configured database path or the default
// ~/.clockwise/clockwise.db.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".clockwise", "clockwise.db"), nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".clockwise", configFileName), nil
}
