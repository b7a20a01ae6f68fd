package resource

import (
	"fmt"
	"strings"
)

// Handle is an immutable addressable location: a scheme, an optional
// authority and a scheme-internal path that always uses '/'.
type Handle struct {
	scheme    Scheme
	authority string
	path      string
}

// New builds a Handle, checking that the path is not empty and that
// filesystem schemes carry a rooted path.
func New(scheme Scheme, authority, path string) (Handle, error) {
	if path == "" {
		return Handle{}, ErrEmptyPath
	}
	if scheme.AddressesFilesystem() && !strings.HasPrefix(path, "/") {
		return Handle{}, fmt.Errorf("%w: %s", ErrRelativePath, path)
	}

	return Handle{scheme: scheme, authority: authority, path: path}, nil
}

// MustNew is like New but panics on invalid input. It is meant for constants and tests.
func MustNew(scheme Scheme, authority, path string) Handle {
	h, err := New(scheme, authority, path)
	if err != nil {
		panic(err)
	}
	return h
}

// Scheme returns the handle scheme.
func (h Handle) Scheme() Scheme {
	return h.scheme
}

// Authority returns the host or connection identifier, possibly empty.
func (h Handle) Authority() string {
	return h.authority
}

// Path returns the scheme-internal, '/'-delimited path.
func (h Handle) Path() string {
	return h.path
}

// IsZero reports whether h was never constructed.
func (h Handle) IsZero() bool {
	return h.path == ""
}

// WithPath returns a copy of h pointing at path.
func (h Handle) WithPath(path string) (Handle, error) {
	return New(h.scheme, h.authority, path)
}

// WithScheme returns a copy of h with another scheme.
func (h Handle) WithScheme(scheme Scheme) (Handle, error) {
	return New(scheme, h.authority, h.path)
}

// Equal reports whether both handles address the same location.
func (h Handle) Equal(o Handle) bool {
	return h.scheme == o.scheme && h.authority == o.authority && h.path == o.path
}

// String renders the handle as a URI.
func (h Handle) String() string {
	if h.authority == "" && !strings.HasPrefix(h.path, "/") {
		return h.scheme.String() + ":" + h.path
	}
	return h.scheme.String() + "://" + h.authority + h.path
}
