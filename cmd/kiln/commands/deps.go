package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "List the declared dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			specs, err := c.app.Requirements(workDir)
			if err != nil {
				return err
			}
			for _, spec := range specs {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), spec.String())
			}
			return nil
		},
	}
}

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve every declared dependency to its install folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			packages, err := c.app.Resolve(cmd.Context(), workDir)
			if err != nil {
				return err
			}
			for _, pkg := range packages {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pkg.Spec(), pkg.InstallFolder)
			}
			return nil
		},
	}
}
