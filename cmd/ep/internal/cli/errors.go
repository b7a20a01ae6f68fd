package cli

import "errors"

// Error definitions for cli package.
var (
	// Configuration loading errors.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
	// Context parsing errors.
	ErrInvalidContext = errors.New("invalid context")
)
