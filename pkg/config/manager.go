package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lerenn/edit-path/configs"
	"github.com/lerenn/edit-path/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	InitConfig(force bool) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
	fs         fs.FS
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return NewManagerWithFS(configPath, fs.NewFS())
}

// NewManagerWithFS creates a new Manager instance reading and writing through f.
func NewManagerWithFS(configPath string, f fs.FS) Manager {
	return &realManager{
		configPath: configPath,
		fs:         f,
	}
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their default values
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := c.expandTildes(&config); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path,
// falling back to default if the file does not exist.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotInitialized) {
		return Config{}, err
	}

	return c.DefaultConfig(), nil
}

// InitConfig writes the embedded default configuration to the config path.
func (c *realManager) InitConfig(force bool) error {
	if err := c.createConfigDirectory(); err != nil {
		return err
	}

	if force {
		if err := c.fs.WriteFileAtomic(c.configPath, configs.DefaultConfigYAML, 0644); err != nil {
			return fmt.Errorf("failed to write configuration file: %w", err)
		}
		return nil
	}

	err := c.fs.CreateFile(c.configPath, configs.DefaultConfigYAML, 0644)
	if errors.Is(err, fs.ErrFileExists) {
		return fmt.Errorf("%w: %s", ErrConfigExists, c.configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the configuration described by the embedded default file.
func (c *realManager) DefaultConfig() Config {
	config := Config{
		PseudoEntries: true,
		LogLevel:      "info",
	}
	_ = yaml.Unmarshal(configs.DefaultConfigYAML, &config)
	return config
}

// expandTildes expands a leading ~ in path fields.
func (c *realManager) expandTildes(config *Config) error {
	wd, err := c.fs.ExpandPath(config.WorkingDirectory)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHomeDirectory, err)
	}
	config.WorkingDirectory = wd
	return nil
}

func (c *realManager) createConfigDirectory() error {
	configDir := filepath.Dir(c.configPath)
	if err := c.fs.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
