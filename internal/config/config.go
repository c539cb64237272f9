// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/playsound/internal/fetch"
)

// Default configuration values.
const (
	DefaultDownloadTimeout = "30s"
)

// Config represents the playsound configuration.
type Config struct {
	Playback PlaybackConfig `toml:"playback"`
	Download DownloadConfig `toml:"download"`
}

// PlaybackConfig holds default playback options.
type PlaybackConfig struct {
	Backend string `toml:"backend"` // Backend name ("" = auto-select)
	Block   bool   `toml:"block"`   // Wait for playback to finish
}

// DownloadConfig holds remote-sound download options.
type DownloadConfig struct {
	Timeout   string `toml:"timeout"`    // HTTP timeout (Go duration string)
	UserAgent string `toml:"user_agent"` // Request User-Agent header
	Dir       string `toml:"dir"`        // Download directory ("" = temp dir)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Backend: "", // Auto-select
			Block:   true,
		},
		Download: DownloadConfig{
			Timeout:   DefaultDownloadTimeout,
			UserAgent: fetch.DefaultUserAgent,
			Dir:       "", // Temp dir
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "playsound", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Parse TOML
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DownloadTimeout parses the configured download timeout, falling back
// to the default on an empty or malformed value.
func (c *Config) DownloadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Download.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultDownloadTimeout)
	}
	return d
}
