package main

import (
	"github.com/spf13/cobra"

	"github.com/panthios/barley/pkg/logging"
)

type rootFlags struct {
	dir string
}

func newRootCmd(log logging.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "barley",
		Short:         "Barley scaffolds and builds workflow script projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "Operate on this directory instead of the working directory")

	cmd.AddCommand(newInitCmd(flags, log))
	cmd.AddCommand(newAddCmd(flags, log))
	cmd.AddCommand(newRemoveCmd(flags, log))
	cmd.AddCommand(newBuildCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
