package access

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lerenn/edit-path/pkg/address"
	"github.com/lerenn/edit-path/pkg/fs"
	"github.com/lerenn/edit-path/pkg/resource"
)

const defaultFilePerm = 0644

// Local serves local-file handles from the host file system.
type Local struct {
	fs fs.FS
}

// NewLocal creates a Local accessor on top of f.
func NewLocal(f fs.FS) *Local {
	return &Local{fs: f}
}

func (l *Local) hostPath(h resource.Handle) (string, error) {
	if h.Scheme().Kind() != resource.KindLocalFile {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, h.Scheme())
	}
	return filepath.FromSlash(address.ToPathString(h)), nil
}

// Stat reports whether the host path of h exists.
func (l *Local) Stat(ctx context.Context, h resource.Handle) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p, err := l.hostPath(h)
	if err != nil {
		return false, err
	}
	return l.fs.Exists(p)
}

// ReadDirectory lists the host directory of h in file name order.
func (l *Local) ReadDirectory(ctx context.Context, h resource.Handle) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := l.hostPath(h)
	if err != nil {
		return nil, err
	}

	dirEntries, err := l.fs.ReadDir(p)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotDirectory):
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, p)
	case l.fs.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	default:
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, Entry{Name: e.Name(), IsDirectory: e.IsDir()})
	}
	return entries, nil
}

// WriteFile writes data at the host path of h. Parent directories must exist.
func (l *Local) WriteFile(ctx context.Context, h resource.Handle, data []byte, opts WriteOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := l.hostPath(h)
	if err != nil {
		return err
	}

	if opts.Create && !opts.Overwrite {
		err := l.fs.CreateFile(p, data, defaultFilePerm)
		switch {
		case errors.Is(err, fs.ErrFileExists):
			return fmt.Errorf("%w: %s", ErrAlreadyExists, p)
		case err != nil && l.fs.IsNotExist(err):
			return fmt.Errorf("%w: %s", ErrNotFound, filepath.Dir(p))
		}
		return err
	}

	exists, err := l.fs.Exists(p)
	if err != nil {
		return err
	}
	if !exists && !opts.Create {
		return fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if exists && !opts.Overwrite {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, p)
	}

	return l.fs.WriteFileAtomic(p, data, defaultFilePerm)
}
