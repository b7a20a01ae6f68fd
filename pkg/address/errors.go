// Package address translates between resolved path strings and resource handles.
package address

import "errors"

// Error definitions for address package.
var (
	// ErrMalformedPath is returned when an absolute path does not satisfy its
	// convention. Callers must abort the operation that needed the handle.
	ErrMalformedPath = errors.New("malformed absolute path")

	// Reasons wrapped by ErrMalformedPath.
	ErrIncompleteUNC      = errors.New("incomplete UNC prefix")
	ErrMissingDriveLetter = errors.New("missing drive letter")
	ErrNotAbsolute        = errors.New("path is not absolute")
)
