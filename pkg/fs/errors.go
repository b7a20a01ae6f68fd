// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// File creation errors.
	ErrFileExists = errors.New("file already exists")

	// Directory errors.
	ErrNotDirectory = errors.New("not a directory")

	// Home directory errors.
	ErrHomeDirectory = errors.New("failed to determine home directory")
)
