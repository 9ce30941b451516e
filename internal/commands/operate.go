package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aurorabank/lumen/internal/dashboard"
	"github.com/aurorabank/lumen/internal/model"
)

func newOperateCommand() *cobra.Command {
	flags := &gatewayFlags{}
	var (
		cardID         string
		accountID      string
		contactID      string
		notificationID string
		notes          string
		amountStr      string
	)

	cmd := &cobra.Command{
		Use:   "operate <kind>",
		Short: "Execute one banking operation and print the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := model.OperationKind(args[0])
			if !kind.Valid() {
				return fmt.Errorf("unsupported operation kind %q", args[0])
			}

			req := model.OperationRequest{
				CardID:         cardID,
				AccountID:      accountID,
				ContactID:      contactID,
				NotificationID: notificationID,
				Notes:          notes,
			}
			if amountStr != "" {
				amount, err := decimal.NewFromString(amountStr)
				if err != nil {
					return fmt.Errorf("parsing amount: %w", err)
				}
				req.Amount = amount
			}
			payload, err := req.Payload(kind)
			if err != nil {
				return err
			}

			cfg, err := flags.load()
			if err != nil {
				return err
			}

			svc := dashboard.NewService(newSimulator(cfg, zap.NewNop()))
			state, err := svc.Execute(cmd.Context(), payload)
			if err != nil {
				return err
			}
			if state.Status == dashboard.StatusError {
				return fmt.Errorf("%s", state.Message)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, state.Message)
			if snap := svc.Snapshot(); snap != nil {
				fmt.Fprintf(out, "Notificaciones sin leer: %d\n", snap.User.Notifications)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&cardID, "card", "", "card ID")
	cmd.Flags().StringVar(&accountID, "account", "", "account ID")
	cmd.Flags().StringVar(&contactID, "contact", "", "contact ID")
	cmd.Flags().StringVar(&notificationID, "notification", "", "notification ID")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 320.50")
	return cmd
}
