package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aurorabank/lumen/internal/catalog"
)

func newOperationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operations the dashboard offers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, d := range catalog.All() {
				fmt.Fprintf(out, "%s  %-24s %s\n", d.Icon, d.Kind, d.Title)
				fmt.Fprintf(out, "    %s\n", d.Description)
			}
			return nil
		},
	}
}
