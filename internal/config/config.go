// ABOUTME: Environment configuration for the Garmin Connect MCP server.
// ABOUTME: Loads credentials and token store paths from env vars or a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	// Email and Password are the Garmin Connect account credentials.
	// Only needed when no usable tokens exist in TokenDir.
	Email    string `env:"GARMIN_EMAIL"`
	Password string `env:"GARMIN_PASSWORD"`

	// TokenDir is where OAuth tokens are persisted between runs.
	TokenDir string `env:"GARMINTOKENS" envDefault:"~/.garminconnect"`

	// TokenBase64Path receives a base64 bundle of both tokens on login,
	// for copying credentials to environments without a writable dir.
	TokenBase64Path string `env:"GARMINTOKENS_BASE64" envDefault:"~/.garminconnect_base64"`

	// Domain selects the Garmin instance: garmin.com or garmin.cn.
	Domain string `env:"GARMIN_DOMAIN" envDefault:"garmin.com"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first if present; real env vars win.
func Load() (*Config, error) {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.TokenDir = ExpandPath(cfg.TokenDir)
	cfg.TokenBase64Path = ExpandPath(cfg.TokenBase64Path)

	if cfg.Domain != "garmin.com" && cfg.Domain != "garmin.cn" {
		return nil, fmt.Errorf("unsupported GARMIN_DOMAIN: %q", cfg.Domain)
	}

	return cfg, nil
}

// HasCredentials reports whether email+password login is possible.
func (c *Config) HasCredentials() bool {
	return c.Email != "" && c.Password != ""
}

// LogValue keeps credentials out of log output.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("domain", c.Domain),
		slog.String("token_dir", c.TokenDir),
		slog.Bool("has_credentials", c.HasCredentials()),
	)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
