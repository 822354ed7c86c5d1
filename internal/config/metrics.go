package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvMetricsEnabled = "ASOCIALOUD_METRICS_ENABLED"
	EnvMetricsPath    = "ASOCIALOUD_METRICS_PATH"
)

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

func (c *MetricsConfig) Finalize() error {
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if v, ok := envBool(EnvMetricsEnabled); ok {
		c.Enabled = v
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path %q must start with /", c.Path)
	}
	return nil
}

