package access

import (
	"context"
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/lerenn/edit-path/pkg/resource"
)

type memoryKey struct {
	scheme    resource.Scheme
	authority string
	path      string
}

// Memory is an in-memory tree of files and directories for any scheme.
// Roots ("/") always exist.
type Memory struct {
	mu    sync.Mutex
	files map[memoryKey][]byte
	dirs  map[memoryKey]struct{}
}

// NewMemory creates an empty Memory accessor.
func NewMemory() *Memory {
	return &Memory{
		files: make(map[memoryKey][]byte),
		dirs:  make(map[memoryKey]struct{}),
	}
}

func keyOf(h resource.Handle) memoryKey {
	return memoryKey{scheme: h.Scheme(), authority: h.Authority(), path: path.Clean(h.Path())}
}

func (k memoryKey) parent() memoryKey {
	return memoryKey{scheme: k.scheme, authority: k.authority, path: path.Dir(k.path)}
}

func (k memoryKey) isRoot() bool {
	return k.path == "/" || k.path == "."
}

// AddDirectory creates the directory at h and its parents.
func (m *Memory) AddDirectory(h resource.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addDirectory(keyOf(h))
}

func (m *Memory) addDirectory(k memoryKey) {
	for !k.isRoot() {
		m.dirs[k] = struct{}{}
		k = k.parent()
	}
}

// AddFile stores data at h, creating parent directories.
func (m *Memory) AddFile(h resource.Handle, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := keyOf(h)
	m.addDirectory(k.parent())
	m.files[k] = append([]byte(nil), data...)
}

// Content returns the data stored at h.
func (m *Memory) Content(h resource.Handle) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[keyOf(h)]
	return data, ok
}

func (m *Memory) isDir(k memoryKey) bool {
	_, ok := m.dirs[k]
	return ok || k.isRoot()
}

// Stat reports whether a file or directory exists at h.
func (m *Memory) Stat(ctx context.Context, h resource.Handle) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	k := keyOf(h)
	_, isFile := m.files[k]
	return isFile || m.isDir(k), nil
}

// ReadDirectory lists the children of h sorted by name.
func (m *Memory) ReadDirectory(ctx context.Context, h resource.Handle) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	k := keyOf(h)
	if _, isFile := m.files[k]; isFile {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, h)
	}
	if !m.isDir(k) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, h)
	}

	var entries []Entry
	for d := range m.dirs {
		if d != k && d.parent() == k {
			entries = append(entries, Entry{Name: path.Base(d.path), IsDirectory: true})
		}
	}
	for f := range m.files {
		if f.parent() == k {
			entries = append(entries, Entry{Name: path.Base(f.path)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}

// WriteFile stores data at h. The parent directory must exist.
func (m *Memory) WriteFile(ctx context.Context, h resource.Handle, data []byte, opts WriteOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	k := keyOf(h)
	if m.isDir(k) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, h)
	}
	_, exists := m.files[k]
	switch {
	case !exists && !opts.Create:
		return fmt.Errorf("%w: %s", ErrNotFound, h)
	case exists && !opts.Overwrite:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, h)
	case !m.isDir(k.parent()):
		return fmt.Errorf("%w: parent of %s", ErrNotFound, h)
	}

	m.files[k] = append([]byte(nil), data...)
	return nil
}
