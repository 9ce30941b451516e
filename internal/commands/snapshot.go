package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aurorabank/lumen/internal/dashboard"
	"github.com/aurorabank/lumen/internal/format"
	"github.com/aurorabank/lumen/internal/model"
)

func newSnapshotCommand() *cobra.Command {
	flags := &gatewayFlags{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch and print the dashboard snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}

			svc := dashboard.NewService(newSimulator(cfg, zap.NewNop()))
			if err := svc.Refresh(cmd.Context()); err != nil {
				return err
			}
			renderSnapshot(cmd.OutOrStdout(), svc.Snapshot())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func renderSnapshot(w io.Writer, snap *model.Snapshot) {
	fmt.Fprintf(w, "%s · nivel %s · %d notificaciones sin leer\n", snap.User.Name, snap.User.Tier, snap.User.Notifications)

	fmt.Fprintln(w, "\nCuentas:")
	for _, acc := range snap.Accounts {
		fmt.Fprintf(w, "  %-18s %-16s %14s\n", acc.Type, acc.Number, format.Currency(acc.Balance, acc.Currency))
	}

	fmt.Fprintln(w, "\nTarjetas:")
	for _, card := range snap.Cards {
		fmt.Fprintf(w, "  %s (%s ···%s) %s — disponible %s de %s\n",
			card.Label, card.Brand, card.LastFour, card.Status,
			format.Currency(card.Available, model.CurrencyUSD),
			format.Currency(card.Limit, model.CurrencyUSD))
	}

	fmt.Fprintln(w, "\nActividad reciente:")
	for _, item := range snap.RecentActivity {
		fmt.Fprintf(w, "  %s  %-14s %12s  %s\n",
			format.DateTime(item.Timestamp), item.Category,
			format.Currency(item.Amount, item.Currency), item.Title)
	}

	fmt.Fprintln(w, "\nContactos:")
	for _, contact := range snap.Contacts {
		fmt.Fprintf(w, "  %-20s %s · %s\n", contact.Name, contact.Bank, contact.AccountNumber)
	}
}
