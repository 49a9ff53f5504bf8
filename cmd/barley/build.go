package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panthios/barley/internal/scaffold"
	"github.com/panthios/barley/pkg/logging"
)

func newBuildCmd(flags *rootFlags, log logging.Logger) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the project into bin/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := scaffold.NewProject(flags.dir, log)
			if err != nil {
				return err
			}

			if err := scaffold.Build(cmd.Context(), project, target); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Successfully built project")
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Cross-compile for GOOS/GOARCH")

	return cmd
}
