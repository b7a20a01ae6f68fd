package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/lerenn/edit-path/pkg/address"
	"github.com/lerenn/edit-path/pkg/config"
	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/resolver"
	"github.com/lerenn/edit-path/pkg/resource"
)

// DefaultContextURI is the context used when none is given: an unsaved buffer.
const DefaultContextURI = "untitled:Untitled-1"

// ParseContext builds a resolution context from raw, which is either a
// resource URI ("file:///home/me/doc.txt", "untitled:Untitled-1") or an
// absolute host path ("/home/me/doc.txt", `C:\Users\me\doc.txt`).
func ParseContext(raw string, cfg config.Config) (resolver.Context, error) {
	if raw == "" {
		raw = DefaultContextURI
	}

	var c resolver.Context
	if conv, ok := hostPathConvention(raw); ok {
		h, err := address.ToResourceHandle(raw, conv, resource.MustNew(resource.LocalFile, "", "/"))
		if err != nil {
			return resolver.Context{}, fmt.Errorf("%w: %w", ErrInvalidContext, err)
		}
		c = resolver.Context{Handle: h, HostPathSample: raw, Remote: cfg.Remote}
	} else {
		h, err := resource.Parse(raw)
		if err != nil {
			return resolver.Context{}, fmt.Errorf("%w: %w", ErrInvalidContext, err)
		}
		c = resolver.NewContext(h, cfg.Remote)
	}

	c.WorkingDirectory = cfg.WorkingDirectory
	if c.WorkingDirectory == "" && !c.Remote {
		if wd, err := os.Getwd(); err == nil {
			c.WorkingDirectory = wd
		}
	}

	return c, nil
}

func hostPathConvention(raw string) (convention.Convention, bool) {
	switch {
	case strings.HasPrefix(raw, "/"):
		return convention.POSIX, true
	case convention.HasDriveLetter(raw), strings.HasPrefix(raw, `\\`):
		return convention.Windows, true
	}
	return convention.POSIX, false
}
