package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrInvalidLogLevel = errors.New("invalid log_level")
	ErrHomeDirectory   = errors.New("cannot determine home directory")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("ep configuration not found. Run 'ep init' to initialize")
	ErrConfigExists         = errors.New("ep configuration already exists")
)
