package resolver

import (
	"runtime"

	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/resource"
)

// Detector picks the path convention that governs a context.
type Detector struct {
	// HostOS is the GOOS of the machine running the editor.
	HostOS string
}

// NewDetector creates a Detector for the running machine.
func NewDetector() Detector {
	return Detector{HostOS: runtime.GOOS}
}

// Detect returns the convention of c. Unsaved buffers follow the local
// machine, and are assumed POSIX in remote sessions. Filesystem schemes are
// Windows unless their host path starts with '/'.
func (d Detector) Detect(c Context) convention.Convention {
	switch c.Handle.Scheme().Kind() {
	case resource.KindUnsavedBuffer:
		if d.HostOS == "windows" && !c.Remote {
			return convention.Windows
		}
		return convention.POSIX
	case resource.KindLocalFile, resource.KindRemoteFile:
		if c.HostPathSample != "" && c.HostPathSample[0] != '/' {
			return convention.Windows
		}
		return convention.POSIX
	case resource.KindOther:
		return convention.POSIX
	}
	return convention.POSIX
}
