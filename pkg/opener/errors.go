package opener

import (
	"errors"

	"github.com/lerenn/edit-path/internal/base"
)

// Error definitions for opener package.
var (
	ErrInvalidLocation = base.ErrInvalidLocation
	ErrStatFailed      = errors.New("failed to check file existence")
	ErrNotFound        = errors.New("file not found")
	ErrCreateFailed    = errors.New("failed to create file")
)
