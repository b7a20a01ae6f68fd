// Package resource provides the addressable location value shared by the path
// resolution packages.
package resource

import "errors"

// Error definitions for resource package.
var (
	// Handle construction errors.
	ErrEmptyPath    = errors.New("resource path cannot be empty")
	ErrRelativePath = errors.New("resource path must begin with '/'")

	// Parsing errors.
	ErrInvalidURI = errors.New("invalid resource uri")
)
