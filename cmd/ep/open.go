package main

import (
	"fmt"

	"github.com/lerenn/edit-path/cmd/ep/internal/cli"
	"github.com/lerenn/edit-path/cmd/ep/internal/styles"
	"github.com/lerenn/edit-path/pkg/opener"
	"github.com/spf13/cobra"
)

func createOpenCmd() *cobra.Command {
	var (
		contextURI string
		create     bool
	)

	openCmd := &cobra.Command{
		Use:   "open <partial> [--context <uri>] [--create]",
		Short: "Check or create the file a partial path points to",
		Long: `Resolve a partial path and check that the file exists, creating it empty
with --create (or create_missing in the configuration).

Examples:
  ep open notes.txt --context /home/user/doc.txt
  ep open ../new.txt --context /home/user/doc.txt --create`,
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

			result, err := cli.NewOpener(cfg).Open(cmd.Context(), args[0], c, opener.OpenOptions{
				Create: create || cfg.CreateMissing,
			})
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}

			status := "opened"
			if result.Created {
				status = "created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.Success(status), result.Path)
			return nil
		},
	}

	openCmd.Flags().StringVar(&contextURI, "context", "", "URI or absolute path of the context document")
	openCmd.Flags().BoolVar(&create, "create", false, "Create the file when it does not exist")

	return openCmd
}
