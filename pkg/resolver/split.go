// Package resolver turns a user-typed partial path into a fully resolved path,
// choosing between the Windows and POSIX conventions from the active context.
package resolver

import "strings"

// Split cuts p after its last separator. A Windows UNC prefix with no
// separator after the host ("\\host") is not yet a complete location: the
// whole string is returned as the directory part with an empty base name.
func Split(p string, sep byte) (dir, base string) {
	if sep == '\\' && len(p) >= 2 && p[0] == sep && p[1] == sep {
		if strings.IndexByte(p[2:], sep) == -1 {
			return p, ""
		}
	}

	i := strings.LastIndexByte(p, sep)
	if i == -1 {
		return "", p
	}
	return p[:i+1], p[i+1:]
}
