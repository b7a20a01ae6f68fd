// Package config provides configuration management functionality for the ep application.
package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config represents the application configuration.
type Config struct {
	// Remote tells the resolver that the editor runs a remote session.
	Remote bool `yaml:"remote"`
	// WorkingDirectory is the base directory of contexts without a location.
	WorkingDirectory string `yaml:"working_directory"`
	// PseudoEntries adds "./" and "../" to completion listings.
	PseudoEntries bool `yaml:"pseudo_entries"`
	// CreateMissing lets open create files that do not exist yet.
	CreateMissing bool `yaml:"create_missing"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.LogLevel)
		}
	}

	return nil
}

// Level returns the configured zerolog level, info when unset.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}
