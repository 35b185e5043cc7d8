package commands

import (
	"fmt"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"strings"

	"github.com/spf13/cobra"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "bills", Short: "Bills and payment verification"}
	cmd.AddCommand(billsListCmd(), billsPendingCmd(), billsCreateCmd(), billsVerifyCmd())
	return cmd
}

func billsListCmd() *cobra.Command {
	var st, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills with their latest payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			bills, err := api.Bills(cmd.Context(), st, search)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(bills))
			for _, b := range bills {
				p, ok := b.LatestPayment()
				pay := view.PaymentBadgeFor(view.PaymentState(b.Status, p.Status, ok))
				paymentID := "-"
				if ok {
					paymentID = p.ID
				}
				rows = append(rows, []string{
					b.BillNumber, b.User.FullName(), view.FormatCurrency(b.TotalAmount, "NGN"),
					status(b.Status), pay.Label, paymentID, view.FormatDate(b.DueDate),
				})
			}
			out := cmd.OutOrStdout()
			printTable(out, "No bills found",
				[]string{"Bill", "Customer", "Total", "Status", "Payment", "Payment ID", "Due"}, rows)
			if n := domain.CountAwaitingVerification(bills); n > 0 {
				fmt.Fprintf(out, "%d payment%s awaiting verification\n", n, view.Plural(n))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&st, "status", "", "filter by status ("+strings.Join(domain.BillStatuses, ", ")+")")
	cmd.Flags().StringVar(&search, "search", "", "bill number or customer")
	return cmd
}

func billsPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List payments awaiting verification",
		RunE: func(cmd *cobra.Command, args []string) error {
			payments, err := api.PendingPayments(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(payments))
			for _, p := range payments {
				rows = append(rows, []string{
					p.ID, view.FormatCurrency(p.Amount, "NGN"), p.Method, p.Reference, view.FormatDateTime(p.CreatedAt),
				})
			}
			printTable(cmd.OutOrStdout(), "No payments awaiting verification",
				[]string{"Payment ID", "Amount", "Method", "Reference", "Submitted"}, rows)
			return nil
		},
	}
}

func billsCreateCmd() *cobra.Command {
	var (
		in         domain.NewBill
		additional float64
	)
	cmd := &cobra.Command{
		Use:   "create <shipment-id>",
		Short: "Create a bill for a shipment by hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ShipmentID = args[0]
			in.AdditionalFees = changedFloat(cmd, "additional-fees", additional)
			b, err := api.CreateBill(cmd.Context(), in)
			if err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Bill %s created for %s", b.BillNumber, view.FormatCurrency(b.TotalAmount, "NGN"))
			return nil
		},
	}
	cmd.Flags().Float64Var(&in.ShippingFee, "shipping-fee", 0, "shipping fee (NGN)")
	cmd.Flags().Float64Var(&in.ClearingFee, "clearing-fee", 0, "clearing fee (NGN)")
	cmd.Flags().Float64Var(&additional, "additional-fees", 0, "additional fees (NGN)")
	_ = cmd.MarkFlagRequired("shipping-fee")
	_ = cmd.MarkFlagRequired("clearing-fee")
	return cmd
}

func billsVerifyCmd() *cobra.Command {
	var (
		approve, reject bool
		notes           string
	)
	cmd := &cobra.Command{
		Use:   "verify <payment-id>",
		Short: "Approve or reject an uploaded payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := domain.PaymentVerification{Status: domain.PaymentApproved, Notes: strings.TrimSpace(notes)}
			if reject {
				v.Status = domain.PaymentRejected
			}
			if err := api.VerifyPayment(cmd.Context(), args[0], v); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Payment %s", strings.ToLower(v.Status))
			return nil
		},
	}
	cmd.Flags().BoolVar(&approve, "approve", false, "approve the payment")
	cmd.Flags().BoolVar(&reject, "reject", false, "reject the payment")
	cmd.Flags().StringVar(&notes, "notes", "", "note for the customer")
	cmd.MarkFlagsOneRequired("approve", "reject")
	cmd.MarkFlagsMutuallyExclusive("approve", "reject")
	return cmd
}
