// Package base provides base functionality and error definitions.
package base

import "errors"

// Error definitions for base package.
var (
	// Address translation errors.
	ErrInvalidLocation = errors.New("invalid location")
)
