package access

import (
	"context"

	"github.com/lerenn/edit-path/pkg/resource"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=access.go -destination=mocks/access.gen.go -package=mocks

// Entry is one child of a listed directory.
type Entry struct {
	Name        string
	IsDirectory bool
}

// WriteOptions controls whether WriteFile may create and/or replace a resource.
type WriteOptions struct {
	Create    bool
	Overwrite bool
}

// Accessor reads and writes the storage behind resource handles.
// Implementations own timeouts and retries for their backend.
type Accessor interface {
	// Stat reports whether something exists at h.
	Stat(ctx context.Context, h resource.Handle) (bool, error)

	// ReadDirectory lists the children of the directory at h.
	ReadDirectory(ctx context.Context, h resource.Handle) ([]Entry, error)

	// WriteFile writes data at h according to opts.
	WriteFile(ctx context.Context, h resource.Handle, data []byte, opts WriteOptions) error
}
