// Package lister enumerates directories for completion menus.
package lister

import (
	"context"

	"github.com/lerenn/edit-path/pkg/access"
	"github.com/lerenn/edit-path/pkg/logger"
	"github.com/lerenn/edit-path/pkg/resolver"
	"github.com/lerenn/edit-path/pkg/resource"
)

// Pseudo entry names, appended after the real children.
const (
	CurrentDirectory = "."
	ParentDirectory  = ".."
)

// Entry is one line of a directory listing.
// DisplayName ends with the separator iff IsDirectory.
type Entry struct {
	DisplayName string
	IsDirectory bool
}

// Lister lists directory handles through an access.Accessor.
type Lister struct {
	accessor access.Accessor
	detector resolver.Detector
	logger   logger.Logger
}

// NewListerParams contains parameters for creating a new Lister.
type NewListerParams struct {
	Accessor access.Accessor
	Detector *resolver.Detector
	Logger   logger.Logger
}

// NewLister creates a new Lister.
func NewLister(params NewListerParams) *Lister {
	detector := resolver.NewDetector()
	if params.Detector != nil {
		detector = *params.Detector
	}
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &Lister{
		accessor: params.Accessor,
		detector: detector,
		logger:   l,
	}
}

// List returns the children of dir, optionally followed by the "." and ".."
// pseudo entries. Any access failure yields an empty listing.
func (l *Lister) List(ctx context.Context, dir resource.Handle, addPseudoEntries bool) []Entry {
	entries, err := l.list(ctx, dir, addPseudoEntries)
	if err != nil {
		l.logger.Logf("cannot list %s: %v", dir, err)
		return []Entry{}
	}
	return entries
}

func (l *Lister) list(ctx context.Context, dir resource.Handle, addPseudoEntries bool) ([]Entry, error) {
	if dir.IsZero() {
		return nil, ErrInvalidHandle
	}

	children, err := l.accessor.ReadDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}

	sep := string(l.detector.Detect(resolver.NewContext(dir, false)).Separator())

	entries := make([]Entry, 0, len(children)+2)
	for _, child := range children {
		name := child.Name
		if child.IsDirectory {
			name += sep
		}
		entries = append(entries, Entry{DisplayName: name, IsDirectory: child.IsDirectory})
	}

	if addPseudoEntries {
		entries = append(entries,
			Entry{DisplayName: CurrentDirectory + sep, IsDirectory: true},
			Entry{DisplayName: ParentDirectory + sep, IsDirectory: true},
		)
	}

	return entries, nil
}
