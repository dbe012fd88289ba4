package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type layoutJSON struct {
	Convention string `json:"convention"`
	Root       string `json:"root"`
	Source     string `json:"source"`
	Build      string `json:"build"`
	Generators string `json:"generators"`
}

func (c *CLI) newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the folder assigned to each layout role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := c.app.Layout(workDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(layoutJSON{
					Convention: layout.Convention,
					Root:       layout.Root,
					Source:     layout.Source,
					Build:      layout.Build,
					Generators: layout.Generators,
				})
			}

			for _, role := range layout.Roles() {
				path, _ := layout.Path(role)
				_, _ = fmt.Fprintf(out, "%-10s %s\n", role, path)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the layout as JSON")

	return cmd
}
