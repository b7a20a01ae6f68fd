package main

import (
	"fmt"

	"github.com/lerenn/edit-path/cmd/ep/internal/cli"
	"github.com/lerenn/edit-path/cmd/ep/internal/styles"
	"github.com/spf13/cobra"
)

func createResolveCmd() *cobra.Command {
	var contextURI string

	resolveCmd := &cobra.Command{
		Use:   "resolve <partial> [--context <uri>]",
		Short: "Resolve a partial path against a context document",
		Long: `Resolve a partial path the way open would, without touching the file system.

Examples:
  ep resolve ../sibling.txt --context /home/user/doc.txt
  ep resolve 'sub\f.txt' --context 'C:\Users\me\doc.txt'
  ep resolve ~/notes.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig()
			if err != nil {
				return err
			}
			c, err := cli.ParseContext(contextURI, cfg)
			if err != nil {
				return err
			}

			rp := cli.NewOpener(cfg).Resolver.Resolve(args[0], c)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styles.Subtle("convention:"), rp.Convention)
			fmt.Fprintf(out, "%s %s\n", styles.Subtle("directory: "), rp.FullDirectory)
			fmt.Fprintf(out, "%s %s\n", styles.Subtle("path:      "), styles.Bold(rp.FullPath))
			return nil
		},
	}

	resolveCmd.Flags().StringVar(&contextURI, "context", "", "URI or absolute path of the context document")

	return resolveCmd
}
