// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the default configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvAppEnv specifies the environment name for configuration overlays.
	EnvAppEnv = "ASOCIALOUD_ENV"
)

// Config represents the root application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	Guard   GuardConfig   `toml:"guard"`
	Session SessionConfig `toml:"session"`
	Metrics MetricsConfig `toml:"metrics"`
}

// Load reads path and applies the overlay named by ASOCIALOUD_ENV, if one
// exists next to it. A missing base file yields an empty configuration, so
// the defaults applied by Finalize take over.
//
// The overlay is decoded onto the base configuration: every key it sets wins,
// an explicit false included, and keys it omits keep their base value.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := decode(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if overlay := overlayPath(path); overlay != "" {
		if err := decode(overlay, cfg); err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Logging.Finalize(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Guard.Finalize(); err != nil {
		return fmt.Errorf("guard: %w", err)
	}
	if err := c.Session.Finalize(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := c.Metrics.Finalize(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

func decode(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func overlayPath(base string) string {
	if env := os.Getenv(EnvAppEnv); env != "" {
		overlay := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(overlay); err == nil {
			return overlay
		}
	}
	return ""
}

func envBool(name string) (value, ok bool) {
	switch os.Getenv(name) {
	case "1", "true", "TRUE", "True":
		return true, true
	case "0", "false", "FALSE", "False":
		return false, true
	}
	return false, false
}
