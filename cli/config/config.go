// Package config handles CLI configuration loading and management.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is missing or leaves fields unset.
const (
	DefaultNamespace   = "genai"
	DefaultSurfaceFile = "surface.yaml"
)

// Config represents the CLI configuration.
type Config struct {
	// Namespace is the module prefix audited and listed by default.
	Namespace string `yaml:"namespace"`

	// Surface is the path of the committed surface manifest.
	Surface string `yaml:"surface"`

	// Color controls ANSI output: auto, always or never.
	Color string `yaml:"color,omitempty"`
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.genai/config.yaml
// - Windows: %USERPROFILE%\.genai\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		// Fallback to current directory
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".genai", "config.yaml")
}

// LoadConfig loads configuration from the specified path.
// If the file doesn't exist, returns a config with defaults without error.
// Returns an error only if the file exists but cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing config file is not an error
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.Surface == "" {
		c.Surface = DefaultSurfaceFile
	}
	if c.Color == "" {
		c.Color = "auto"
	}
}
