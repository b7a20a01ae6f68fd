package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetHomeDir returns the user's home directory path.
func (f *realFS) GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirectory, err)
	}
	return home, nil
}

// ExpandPath expands "~" and "~/..." to the user's home directory.
// Other paths, including "~user", are returned as-is.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}
