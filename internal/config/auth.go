package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvGuardEnabled    = "ASOCIALOUD_GUARD_ENABLED"
	EnvGuardLoginPath  = "ASOCIALOUD_GUARD_LOGIN_PATH"
	EnvSessionCookie   = "ASOCIALOUD_SESSION_COOKIE"
	EnvSessionLifetime = "ASOCIALOUD_SESSION_LIFETIME"
	EnvSessionSecure   = "ASOCIALOUD_SESSION_SECURE"
)

// GuardConfig controls the members-only navigation guard. It is off unless
// enabled explicitly.
type GuardConfig struct {
	Enabled   bool   `toml:"enabled"`
	LoginPath string `toml:"login_path"`
}

func (c *GuardConfig) Finalize() error {
	if c.LoginPath == "" {
		c.LoginPath = "/login"
	}
	if v, ok := envBool(EnvGuardEnabled); ok {
		c.Enabled = v
	}
	if v := os.Getenv(EnvGuardLoginPath); v != "" {
		c.LoginPath = v
	}
	if !strings.HasPrefix(c.LoginPath, "/") {
		return fmt.Errorf("login_path %q must start with /", c.LoginPath)
	}
	return nil
}

// SessionConfig controls the session cookie that carries the login state.
type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	Lifetime   string `toml:"lifetime"`
	Secure     bool   `toml:"secure"`
}

// LifetimeDuration parses and returns the session lifetime.
func (c *SessionConfig) LifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.Lifetime)
	return d
}

func (c *SessionConfig) Finalize() error {
	if c.CookieName == "" {
		c.CookieName = "asocialoud_session"
	}
	if c.Lifetime == "" {
		c.Lifetime = "24h"
	}
	if v := os.Getenv(EnvSessionCookie); v != "" {
		c.CookieName = v
	}
	if v := os.Getenv(EnvSessionLifetime); v != "" {
		c.Lifetime = v
	}
	if v, ok := envBool(EnvSessionSecure); ok {
		c.Secure = v
	}
	d, err := time.ParseDuration(c.Lifetime)
	if err != nil {
		return fmt.Errorf("invalid lifetime: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("lifetime must be positive, got %s", c.Lifetime)
	}
	return nil
}
