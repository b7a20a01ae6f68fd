//go:build unit || integration

package main

import (
	"bytes"
	"testing"

	"github.com/lerenn/edit-path/cmd/ep/internal/cli"
)

func runEp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cli.Verbose = false
		cli.ConfigPath = ""
		cli.Remote = false
	})

	var out bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}
