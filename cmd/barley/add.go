package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panthios/barley/internal/scaffold"
	"github.com/panthios/barley/pkg/logging"
)

func newAddCmd(flags *rootFlags, log logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "add <module>",
		Short: "Add an action module to the project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := scaffold.NewProject(flags.dir, log)
			if err != nil {
				return err
			}

			if err := scaffold.Add(cmd.Context(), project, args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully added module %s\n", args[0])
			return nil
		},
	}
}
