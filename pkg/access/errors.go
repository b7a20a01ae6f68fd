// Package access provides the resource-access capability: stat, directory
// listing and writes addressed by resource handles.
package access

import "errors"

// Error definitions for access package.
var (
	ErrUnsupportedScheme = errors.New("unsupported resource scheme")
	ErrNotFound          = errors.New("resource not found")
	ErrNotDirectory      = errors.New("resource is not a directory")
	ErrAlreadyExists     = errors.New("resource already exists")
)
