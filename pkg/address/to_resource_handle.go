package address

import (
	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/resource"
)

// ToResourceHandle turns an absolute path into a handle that can be accessed.
// Windows paths always address the local filesystem. POSIX paths keep the
// scheme and authority of ref, an unsaved buffer becoming a local file.
// A path that fails Validate yields ErrMalformedPath and no handle.
func ToResourceHandle(p string, conv convention.Convention, ref resource.Handle) (resource.Handle, error) {
	if err := Validate(p, conv); err != nil {
		return resource.Handle{}, err
	}

	if conv.IsWindows() {
		// Only the scheme matters here: drive and UNC paths set their own authority.
		ref = resource.MustNew(resource.LocalFile, "", "/")
	}

	return FromPathToHandle(p, conv, ref)
}
