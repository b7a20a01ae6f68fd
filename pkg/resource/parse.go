package resource

import (
	"fmt"
	"net/url"
	"strings"
)

// Parse reads a handle from its URI form, e.g. "file:///c:/far/boo",
// "untitled:Untitled-1" or "remote://ssh-box/home/me/doc.txt".
func Parse(uri string) (Handle, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	if u.Scheme == "" {
		return Handle{}, fmt.Errorf("%w: missing scheme in %q", ErrInvalidURI, uri)
	}

	path := u.Path
	if u.Opaque != "" {
		path = u.Opaque
	}
	path = strings.ReplaceAll(path, "\\", "/")

	h, err := New(ParseScheme(u.Scheme), u.Host, path)
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	return h, nil
}
