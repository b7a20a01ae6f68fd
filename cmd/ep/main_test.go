//go:build unit

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/lerenn/edit-path/cmd/ep/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCmd_Posix(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runEp(t, "resolve", "../sibling.txt", "--context", "/home/user/doc.txt", "--config", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, "posix")
	assert.Contains(t, out, "/home/sibling.txt")
}

func TestResolveCmd_Windows(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runEp(t, "resolve", "sub/f.txt", "--context", `C:\Users\me\doc.txt`, "--config", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, `C:\Users\me\sub\f.txt`)
}

func TestResolveCmd_InvalidContext(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	_, err := runEp(t, "resolve", "f.txt", "--context", "://nope", "--config", configPath)
	assert.ErrorIs(t, err, cli.ErrInvalidContext)
}

func TestResolveCmd_UNCShareURI(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := runEp(t, "resolve", "f.txt", "--context", "file://host/share/dir/doc.txt", "--config", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, "windows")
	assert.Contains(t, out, `\\host\share\dir\f.txt`)
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer

	printError(&out, cli.ErrInvalidContext)

	assert.Contains(t, out.String(), "Error: invalid context")
}

func TestInitCmd(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".ep", "config.yaml")

	out, err := runEp(t, "init", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, configPath)
	assert.FileExists(t, configPath)

	_, err = runEp(t, "init", "--config", configPath)
	assert.Error(t, err)

	_, err = runEp(t, "init", "--force", "--config", configPath)
	assert.NoError(t, err)
}
