package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aurorabank/lumen/internal/dashboard"
	"github.com/aurorabank/lumen/internal/export"
)

func newExportCommand() *cobra.Command {
	flags := &gatewayFlags{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export recent activity as a CSV statement",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			svc := dashboard.NewService(newSimulator(cfg, zap.NewNop()))
			if err := svc.Refresh(cmd.Context()); err != nil {
				return err
			}
			snap := svc.Snapshot()

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("creating statement file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := export.WriteStatement(out, snap.RecentActivity); err != nil {
				return fmt.Errorf("writing statement: %w", err)
			}
			if len(args) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(snap.RecentActivity), args[0])
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
