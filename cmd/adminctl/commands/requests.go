package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func requestsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "requests", Short: "Shipment requests awaiting approval"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List shipment requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ships, err := api.ShipmentRequests(cmd.Context())
			if err != nil {
				return err
			}
			printShipments(cmd, "No pending shipment requests", ships)
			return nil
		},
	}

	approve := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a request; the shipment moves to PROCESSING",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.ApproveShipmentRequest(cmd.Context(), args[0]); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Request approved")
			return nil
		},
	}

	var reason string
	reject := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.RejectShipmentRequest(cmd.Context(), args[0], strings.TrimSpace(reason)); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Request rejected")
			return nil
		},
	}
	reject.Flags().StringVar(&reason, "reason", "", "reason shown to the customer")

	cmd.AddCommand(list, approve, reject)
	return cmd
}
