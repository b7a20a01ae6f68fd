// Package opener sequences path resolution, address translation and
// resource access for the open and completion commands.
package opener

import (
	"github.com/lerenn/edit-path/internal/base"
	"github.com/lerenn/edit-path/pkg/resource"
)

// OpenOptions contains options for Open.
type OpenOptions struct {
	// Create makes Open create an empty file when nothing exists at the
	// resolved location.
	Create bool
}

// Result describes the resource Open settled on.
type Result struct {
	Handle resource.Handle
	// Path is the resolved location written with the separators of its convention.
	Path    string
	Created bool
}

// Opener opens, creates and completes paths typed relative to an editor context.
type Opener struct {
	*base.Base
}

// NewOpener creates a new Opener.
func NewOpener(b *base.Base) *Opener {
	return &Opener{Base: b}
}
