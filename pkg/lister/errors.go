package lister

import "errors"

// Error definitions for lister package.
var (
	ErrInvalidHandle = errors.New("invalid directory handle")
)
