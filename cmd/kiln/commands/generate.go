package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Resolve dependencies, select the layout and stage resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Generate(cmd.Context(), workDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, stage := range result.Stages {
				line := fmt.Sprintf("%s: %d file(s) staged into %s",
					stage.Report.Package, len(stage.Report.Files), stage.Report.Destination)
				if !stage.Changed {
					line += " (unchanged)"
				}
				if len(stage.Removed) > 0 {
					line += fmt.Sprintf(", %d stale file(s) removed", len(stage.Removed))
				}
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
