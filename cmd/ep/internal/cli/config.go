// Package cli provides common configuration and utility functions for the ep CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/edit-path/pkg/config"
)

var (
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Remote forces remote-session resolution regardless of the configuration.
	Remote bool
)

// LoadConfig loads the configuration, falling back to defaults when ep was
// never initialized.
func LoadConfig() (config.Config, error) {
	cfg, err := NewConfigManager().GetConfigWithFallback()
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	if Remote {
		cfg.Remote = true
	}
	return cfg, nil
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	var path string
	if ConfigPath != "" {
		path = ConfigPath
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		path = filepath.Join(homeDir, ".ep", "config.yaml")
	}

	return config.NewManager(path)
}
