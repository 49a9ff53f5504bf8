package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panthios/barley/internal/scaffold"
	"github.com/panthios/barley/pkg/logging"
)

func newInitCmd(flags *rootFlags, log logging.Logger) *cobra.Command {
	var lib bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new barley project in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := scaffold.NewProject(flags.dir, log)
			if err != nil {
				return err
			}

			if err := scaffold.Init(cmd.Context(), project, lib); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Successfully initialized barley project")
			return nil
		},
	}

	cmd.Flags().BoolVar(&lib, "lib", false, "Initialize an action library instead of a script")

	return cmd
}
