// Package main provides the command-line interface for the ep application.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lerenn/edit-path/cmd/ep/internal/cli"
	"github.com/lerenn/edit-path/cmd/ep/internal/styles"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ep",
		Short: "Edit Path - resolve paths typed relative to an open document",
		Long: `Resolve, open, list and complete paths typed relative to the document ` +
			`an editor has open, on POSIX and Windows paths alike.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().BoolVar(&cli.Remote, "remote", false, "Resolve as in a remote editor session")

	rootCmd.AddCommand(
		createResolveCmd(),
		createOpenCmd(),
		createLsCmd(),
		createCompleteCmd(),
		createInitCmd(),
	)

	return rootCmd
}

// printError renders a command failure on w.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, styles.Error("Error: "+err.Error()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
