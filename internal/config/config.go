// Package config loads and persists driverup settings.
//
// Settings live in a flat JSON file at ~/.driverup/config.json and can be
// overridden per-invocation with DRIVERUP_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the driverup settings.
//
// TargetDirectory, LastUpdate, and AutoUpdate mirror the persistent settings
// of the tool; the rest tune a single run. AutoUpdate is reserved and has no
// behavior yet.
type Configuration struct {
	TargetDirectory    string `koanf:"target_directory" json:"target_directory"`
	LastUpdate         string `koanf:"last_update" json:"last_update"`
	AutoUpdate         bool   `koanf:"auto_update" json:"auto_update"`
	DriverPath         string `koanf:"driver_path" json:"driver_path" validate:"required"`
	Platform           string `koanf:"platform" json:"platform" validate:"required,oneof=linux64 mac-arm64 mac-x64 win32 win64"`
	DownloadDir        string `koanf:"download_dir" json:"download_dir" validate:"required"`
	HTTPTimeoutSeconds int    `koanf:"http_timeout_seconds" json:"http_timeout_seconds" validate:"min=1,max=600"`
	ShowProgress       bool   `koanf:"show_progress" json:"show_progress"`
	SkipConfirmations  bool   `koanf:"skip_confirmations" json:"skip_confirmations"` // Can also be set via DRIVERUP_YES env var
}

// Timeout returns the HTTP timeout as a duration.
func (c *Configuration) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// DefaultPath returns the default config file location (~/.driverup/config.json).
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".driverup", "config.json"), nil
}

// Load loads configuration from the file at path (DefaultPath when empty)
// and environment variables.
// Priority: Environment variables > config file > defaults.
//
// An absent or unreadable config file is not an error: the run continues on
// defaults, and the file is rewritten on the next successful install.
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if path == "" {
		defaultPath, err := DefaultPath()
		if err == nil {
			path = defaultPath
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			// Corrupt config falls back to defaults instead of blocking the run.
			_ = k.Load(file.Provider(path), json.Parser())
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("DRIVERUP_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.TargetDirectory = expandHomePath(cfg.TargetDirectory)
	cfg.DownloadDir = expandHomePath(cfg.DownloadDir)

	// Handle DRIVERUP_YES as an alias for skip_confirmations
	if os.Getenv("DRIVERUP_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: DRIVERUP_DOWNLOAD_DIR -> download_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "DRIVERUP_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
