package convention

import "strings"

// HasDriveLetter reports whether p starts with a drive letter and a colon.
func HasDriveLetter(p string) bool {
	return len(p) >= 2 && isLetter(p[0]) && p[1] == ':'
}

// IsUNC reports whether p starts with two separators.
func IsUNC(p string) bool {
	return len(p) >= 2 && isSlash(p[0]) && isSlash(p[1])
}

// SplitUNC splits "\\host\share\rest" into its parts. ok is false when the
// host or the share name is missing.
func SplitUNC(p string) (host, share, rest string, ok bool) {
	if !IsUNC(p) {
		return "", "", "", false
	}
	p = p[2:]
	hostLen := strings.IndexAny(p, `\/`)
	if hostLen < 1 {
		return "", "", "", false
	}
	host = p[:hostLen]
	p = p[hostLen+1:]

	shareLen := strings.IndexAny(p, `\/`)
	switch {
	case shareLen == -1:
		share = p
	case shareLen == 0:
		return "", "", "", false
	default:
		share, rest = p[:shareLen], p[shareLen+1:]
	}
	if share == "" {
		return "", "", "", false
	}
	return host, share, rest, true
}
