// Package convention describes the two path grammars a resolved path can follow:
// Windows (backslash, drive letters, UNC shares) and POSIX (forward slash).
package convention

import (
	"path"
	"strings"
)

// Convention is a path grammar. Exactly two values exist: Windows and POSIX.
type Convention struct {
	name    string
	sep     byte
	windows bool
}

var (
	// Windows is the backslash grammar with drive letters and UNC shares.
	Windows = Convention{name: "windows", sep: '\\', windows: true}
	// POSIX is the forward slash grammar.
	POSIX = Convention{name: "posix", sep: '/'}
)

// Name returns "windows" or "posix".
func (c Convention) Name() string {
	return c.name
}

func (c Convention) String() string {
	return c.name
}

// IsWindows reports whether c is the Windows convention.
func (c Convention) IsWindows() bool {
	return c.windows
}

// Separator returns the directory separator.
func (c Convention) Separator() byte {
	return c.sep
}

// Root returns the default root directory of the convention.
func (c Convention) Root() string {
	if c.windows {
		return `C:\`
	}
	return "/"
}

// IsAbsolute reports whether p is absolute. Under Windows a path rooted on a
// separator (including an incomplete UNC prefix) counts as absolute.
func (c Convention) IsAbsolute(p string) bool {
	if c.windows {
		return winIsAbs(p)
	}
	return path.IsAbs(p)
}

// Join joins elements with the separator and cleans the result.
// Empty elements are ignored; joining only empty elements gives "".
func (c Convention) Join(elem ...string) string {
	if c.windows {
		return winJoin(elem...)
	}
	for i, e := range elem {
		if e != "" {
			return path.Clean(strings.Join(elem[i:], "/"))
		}
	}
	return ""
}

// Clean returns the shortest equivalent of p by lexical processing.
func (c Convention) Clean(p string) string {
	if c.windows {
		return winClean(p)
	}
	return path.Clean(p)
}

// Dir returns all but the last element of p.
func (c Convention) Dir(p string) string {
	if c.windows {
		return winDir(p)
	}
	return path.Dir(p)
}

// Base returns the last element of p.
func (c Convention) Base(p string) string {
	if c.windows {
		return winBase(p)
	}
	return path.Base(p)
}

// FromSlash replaces each '/' in p with the separator.
func (c Convention) FromSlash(p string) string {
	if c.windows {
		return strings.ReplaceAll(p, "/", `\`)
	}
	return p
}

// ToSlash replaces each separator in p with '/'.
func (c Convention) ToSlash(p string) string {
	if c.windows {
		return strings.ReplaceAll(p, `\`, "/")
	}
	return p
}
