package main

import (
	"fmt"

	"github.com/lerenn/edit-path/cmd/ep/internal/cli"
	"github.com/lerenn/edit-path/cmd/ep/internal/styles"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Initialize ep configuration",
		Long: `Write the default configuration to ~/.ep/config.yaml (or the path given with --config).

Flags:
  --force   Overwrite an existing configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager()
			if err := manager.InitConfig(force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.Success("initialized"), manager.GetConfigPath())
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")

	return initCmd
}
