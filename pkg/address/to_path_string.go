package address

import (
	"strings"

	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/resource"
)

// ToPathString returns the '/'-separated path a handle denotes: "/c:/far/boo"
// becomes "C:/far/boo" and a local UNC authority becomes "//authority/path".
func ToPathString(h resource.Handle) string {
	p := h.Path()

	if h.Authority() != "" && len(p) > 1 && h.Scheme().Kind() == resource.KindLocalFile {
		return "//" + h.Authority() + p
	}

	if len(p) >= 3 && p[0] == '/' && convention.HasDriveLetter(p[1:]) {
		return strings.ToUpper(p[1:2]) + p[2:]
	}

	return p
}

// PathStringFor is ToPathString expressed with the separator of conv.
func PathStringFor(h resource.Handle, conv convention.Convention) string {
	return conv.FromSlash(ToPathString(h))
}
