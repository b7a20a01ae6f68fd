package main

import (
	"fmt"
	"io"

	"github.com/lerenn/edit-path/cmd/ep/internal/cli"
	"github.com/lerenn/edit-path/cmd/ep/internal/styles"
	"github.com/lerenn/edit-path/pkg/lister"
	"github.com/spf13/cobra"
)

func createLsCmd() *cobra.Command {
	var pseudo bool

	lsCmd := &cobra.Command{
		Use:   "ls <directory> [--pseudo]",
		Short: "List a directory the way completion menus see it",
		Long: `List the entries of a directory given as URI or absolute path. Directories
end with the separator of their convention.

Examples:
  ep ls /home/user
  ep ls file:///c:/Users/me --pseudo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}
			c, err := cli.ParseContext(args[0], cfg)
			if err != nil {
				return err
			}

			o := cli.NewOpener(cfg)
			o.VerbosePrint("Listing %s", c.Handle)
			displayEntries(cmd.OutOrStdout(), o.Lister.List(cmd.Context(), c.Handle, pseudo))
			return nil
		},
	}

	lsCmd.Flags().BoolVar(&pseudo, "pseudo", false, "Append the . and .. entries")

	return lsCmd
}

// displayEntries prints one entry per line, directories highlighted.
func displayEntries(out io.Writer, entries []lister.Entry) {
	for _, entry := range entries {
		if entry.IsDirectory {
			fmt.Fprintln(out, styles.Directory(entry.DisplayName))
			continue
		}
		fmt.Fprintln(out, entry.DisplayName)
	}
}
