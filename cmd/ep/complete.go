package main

import (
	"fmt"

	"github.com/lerenn/edit-path/cmd/ep/internal/cli"
	"github.com/spf13/cobra"
)

func createCompleteCmd() *cobra.Command {
	var contextURI string

	completeCmd := &cobra.Command{
		Use:   "complete <partial> [--context <uri>]",
		Short: "Print the completion candidates of a partial path",
		Long: `Print, one per line, the entries of the directory a partial path points
into that start with its typed base name.

Examples:
  ep complete ../s --context /home/user/doc.txt
  ep complete '~/Doc'`,
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

			for _, candidate := range cli.NewOpener(cfg).Complete(cmd.Context(), args[0], c) {
				fmt.Fprintln(cmd.OutOrStdout(), candidate)
			}
			return nil
		},
	}

	completeCmd.Flags().StringVar(&contextURI, "context", "", "URI or absolute path of the context document")

	return completeCmd
}
