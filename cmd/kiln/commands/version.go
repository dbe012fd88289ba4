package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the kiln build and the manifest format it reads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				_, _ = fmt.Fprintln(out, build.Version)
				return
			}
			_, _ = fmt.Fprintf(out, "kiln %s\n", build.Version)
			_, _ = fmt.Fprintf(out, "  %-9s %s\n", "commit:", build.Commit)
			_, _ = fmt.Fprintf(out, "  %-9s %s\n", "built:", build.Date)
			_, _ = fmt.Fprintf(out, "  %-9s %s (format %s)\n", "manifest:", domain.KilnFileName, domain.ManifestFormat)
			_, _ = fmt.Fprintf(out, "  %-9s %s\n", "store:", domain.DefaultPackageStorePath())
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
