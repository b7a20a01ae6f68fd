package fs

import (
	"fmt"
	"os"
)

// ReadFile reads the contents of a file.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadDir reads the contents of a directory, sorted by file name.
func (f *realFS) ReadDir(path string) ([]os.DirEntry, error) {
	isDir, err := f.IsDir(path)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	return os.ReadDir(path)
}
