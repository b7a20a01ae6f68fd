package resolver

import (
	"github.com/lerenn/edit-path/pkg/address"
	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/resource"
)

// Context is a snapshot of the active document, captured by the host at call time.
type Context struct {
	// Handle is the location of the active document.
	Handle resource.Handle
	// HostPathSample is the raw host path of Handle. Only meaningful for
	// filesystem schemes.
	HostPathSample string
	// Remote is true when the editor runs a remote session.
	Remote bool
	// WorkingDirectory is used as base directory when Handle has no location
	// of its own, e.g. an unsaved buffer.
	WorkingDirectory string
}

// NewContext builds a Context for h, sampling its host path.
// A local file with an authority lives on a UNC share and is sampled as
// `\\host\share\...`.
func NewContext(h resource.Handle, remote bool) Context {
	c := Context{Handle: h, Remote: remote}
	if !h.Scheme().AddressesFilesystem() {
		return c
	}

	c.HostPathSample = address.ToPathString(h)
	if h.Scheme().Kind() == resource.KindLocalFile && convention.IsUNC(c.HostPathSample) {
		c.HostPathSample = convention.Windows.FromSlash(c.HostPathSample)
	}
	return c
}
