package commands

import (
	"naiyuan-admin/internal/view"
	"strconv"

	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show headline counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := api.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printFields(out,
				"Users", strconv.Itoa(d.TotalUsers),
				"Packages", strconv.Itoa(d.TotalPackages),
				"Shipments", strconv.Itoa(d.TotalShipments),
				"Pending shipments", strconv.Itoa(d.PendingShipments),
				"Revenue", view.FormatCurrency(d.TotalRevenue, "NGN"),
				"Pending payments", strconv.Itoa(d.PendingPayments),
			)

			rows := make([][]string, 0, len(d.PackagesByStatus))
			for _, s := range d.PackagesByStatus {
				rows = append(rows, []string{status(s.Status), strconv.Itoa(s.Count.Status)})
			}
			printTable(out, "", []string{"Package status", "Count"}, rows)
			return nil
		},
	}
}
