package address

import (
	"fmt"

	"github.com/lerenn/edit-path/pkg/convention"
)

// Validate checks that p is a well-formed absolute path under conv.
// Windows paths need a complete "\\host\share" prefix or a drive letter
// followed by ":\"; POSIX paths need a leading '/'.
func Validate(p string, conv convention.Convention) error {
	if !conv.IsWindows() {
		if p == "" || p[0] != '/' {
			return fmt.Errorf("%w: %w: %q", ErrMalformedPath, ErrNotAbsolute, p)
		}
		return nil
	}

	if convention.IsUNC(p) {
		if _, _, _, ok := convention.SplitUNC(p); !ok {
			return fmt.Errorf("%w: %w: %q", ErrMalformedPath, ErrIncompleteUNC, p)
		}
		return nil
	}

	if !convention.HasDriveLetter(p) || len(p) < 3 || (p[2] != '\\' && p[2] != '/') {
		return fmt.Errorf("%w: %w: %q", ErrMalformedPath, ErrMissingDriveLetter, p)
	}
	return nil
}
