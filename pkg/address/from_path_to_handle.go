package address

import (
	"strings"

	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/resource"
)

// FromPathToHandle builds a handle for p reusing the scheme and authority of
// ref. Separators become '/', a Windows drive letter is stored lowercased as
// "/c:/..." and a Windows UNC host moves into the authority.
func FromPathToHandle(p string, conv convention.Convention, ref resource.Handle) (resource.Handle, error) {
	scheme := ref.Scheme()
	if scheme.Kind() == resource.KindUnsavedBuffer {
		scheme = resource.LocalFile
	}
	authority := ref.Authority()
	internal := conv.ToSlash(p)

	if conv.IsWindows() {
		authority = ""
		if host, share, rest, ok := convention.SplitUNC(internal); ok {
			authority = host
			internal = "/" + share
			if rest != "" {
				internal += "/" + rest
			}
		} else if convention.HasDriveLetter(internal) {
			internal = "/" + strings.ToLower(internal[:1]) + internal[1:]
		}
	}

	return resource.New(scheme, authority, internal)
}
