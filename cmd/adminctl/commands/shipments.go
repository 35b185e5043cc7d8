package commands

import (
	"fmt"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func shipmentsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "shipments", Short: "Customer shipments"}
	cmd.AddCommand(shipmentsListCmd(), shipmentsStatusCmd(), shipmentsBillCmd())
	return cmd
}

func shipmentsListCmd() *cobra.Command {
	var st, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shipments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ships, err := api.Shipments(cmd.Context(), st, search)
			if err != nil {
				return err
			}
			printShipments(cmd, "No shipments found", ships)
			return nil
		},
	}
	cmd.Flags().StringVar(&st, "status", "", "filter by status ("+strings.Join(domain.ShipmentStatuses, ", ")+")")
	cmd.Flags().StringVar(&search, "search", "", "shipment number or customer")
	return cmd
}

func printShipments(cmd *cobra.Command, empty string, ships []domain.Shipment) {
	rows := make([][]string, 0, len(ships))
	for _, s := range ships {
		rows = append(rows, []string{
			s.ID, s.ShipmentNumber, s.User.FullName(), s.Method,
			strconv.Itoa(len(s.Packages)), floatOrDash(s.WeightKg, " kg"),
			status(s.Status), view.FormatDate(s.CreatedAt),
		})
	}
	printTable(cmd.OutOrStdout(), empty,
		[]string{"ID", "Shipment", "Customer", "Method", "Packages", "Weight", "Status", "Created"}, rows)
}

func shipmentsStatusCmd() *cobra.Command {
	var upd domain.ShipmentStatusUpdate
	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Change one shipment's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.Contains(domain.ShipmentStatuses, upd.Status) {
				return fmt.Errorf("invalid shipment status %q", upd.Status)
			}
			if err := api.UpdateShipmentStatus(cmd.Context(), args[0], upd); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Shipment set to %s", view.Humanize(upd.Status))
			return nil
		},
	}
	cmd.Flags().StringVar(&upd.Status, "status", "", "new status")
	cmd.Flags().StringVar(&upd.Notes, "notes", "", "notes")
	cmd.Flags().StringVar(&upd.Location, "location", "", "current location")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func shipmentsBillCmd() *cobra.Command {
	var (
		d                           domain.ShipmentDetails
		volume, packing, additional float64
	)
	cmd := &cobra.Command{
		Use:   "bill <id>",
		Short: "Add weight and volume, then generate the shipment's bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d.BillingMethod = strings.ToUpper(d.BillingMethod)
			d.VolumeCBM = changedFloat(cmd, "volume", volume)
			d.PackingFee = changedFloat(cmd, "packing-fee", packing)
			d.AdditionalFees = changedFloat(cmd, "additional-fees", additional)
			if err := d.Validate(); err != nil {
				return err
			}

			res, err := api.AddShipmentDetailsAndGenerateBill(cmd.Context(), args[0], d)
			if err != nil {
				return err
			}
			printBillGeneration(cmd, res)
			return nil
		},
	}
	cmd.Flags().Float64Var(&d.WeightKg, "weight", 0, "weight in kg")
	cmd.Flags().Float64Var(&volume, "volume", 0, "volume in CBM (required for VOLUME billing)")
	cmd.Flags().StringVar(&d.BillingMethod, "billing", domain.BillingByWeight, "WEIGHT or VOLUME")
	cmd.Flags().Float64Var(&packing, "packing-fee", 0, "packing fee (USD)")
	cmd.Flags().Float64Var(&additional, "additional-fees", 0, "additional fees")
	cmd.Flags().StringVar(&d.Notes, "notes", "", "notes")
	return cmd
}

// printBillGeneration shows the backend's computed breakdown as is.
func printBillGeneration(cmd *cobra.Command, res *domain.BillGeneration) {
	s := res.Shipment
	out := cmd.OutOrStdout()
	printDone(out, "Bill %s generated", res.Bill.BillNumber)
	printFields(out,
		"Billing method", s.BillingMethod,
		"Weight", view.FormatNumber(s.WeightKg)+" kg",
		"Volume", floatOrDash(s.VolumeCBM, " CBM"),
		"Rate", "$"+view.FormatNumber(res.Rate.FreightCostUSD)+"/"+res.Rate.BillingUnit,
		"Freight", view.FormatMoney(s.FreightUSD, "USD"),
		"Packing", view.FormatMoney(s.PackingFeeUSD, "USD"),
		"Clearing", view.FormatMoney(s.ClearingFee, s.ClearingCurrency),
		"Exchange rate", "1 USD = "+view.FormatMoney(s.ExchangeRate, s.LocalCurrency),
		"Total", view.FormatMoney(s.TotalLocal, s.LocalCurrency),
	)
}
