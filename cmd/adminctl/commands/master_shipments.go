package commands

import (
	"fmt"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func masterShipmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "master-shipments",
		Aliases: []string{"masters"},
		Short:   "Carrier-level consolidations",
	}
	cmd.AddCommand(masterListCmd(), masterShowCmd(), masterCreateCmd(), masterStatusCmd())
	return cmd
}

func masterListCmd() *cobra.Command {
	var st string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List master shipments",
		RunE: func(cmd *cobra.Command, args []string) error {
			masters, err := api.MasterShipments(cmd.Context(), st)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(masters))
			for _, m := range masters {
				rows = append(rows, []string{
					m.ID, m.MasterTrackingNo, m.Method, orDash(m.Destination),
					strconv.Itoa(len(m.Shipments)), strconv.Itoa(m.PackageCount()),
					status(m.Status), dateOrDash(m.EstimatedArrival),
				})
			}
			printTable(cmd.OutOrStdout(), "No master shipments found",
				[]string{"ID", "Tracking no.", "Method", "Destination", "Shipments", "Packages", "Status", "ETA"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&st, "status", "", "filter by status ("+strings.Join(domain.MasterShipmentStatuses, ", ")+")")
	return cmd
}

func masterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a master shipment with its timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := api.MasterShipment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printFields(out,
				"Tracking no.", m.MasterTrackingNo,
				"Status", status(m.Status),
				"Method", m.Method,
				"Route", orDash(m.Route),
				"Destination", orDash(m.Destination),
				"ETA", dateOrDash(m.EstimatedArrival),
			)
			printShipments(cmd, "No linked shipments", m.Shipments)

			rows := make([][]string, 0, len(m.StatusHistory))
			for _, h := range m.StatusHistory {
				rows = append(rows, []string{view.FormatDateTime(h.Timestamp), status(h.Status), orDash(h.Notes), orDash(h.Location)})
			}
			printTable(out, "No status history", []string{"When", "Status", "Notes", "Location"}, rows)
			return nil
		},
	}
}

func masterCreateCmd() *cobra.Command {
	var in domain.NewMasterShipment
	cmd := &cobra.Command{
		Use:   "create <shipment-id>...",
		Short: "Consolidate PROCESSING shipments into a new master shipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ShipmentIDs = args
			in.Method = strings.ToUpper(in.Method)
			if err := in.Validate(); err != nil {
				return err
			}
			m, err := api.CreateMasterShipment(cmd.Context(), in)
			if err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Master shipment %s created with %s", m.MasterTrackingNo, formatIDs(in.ShipmentIDs))
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Method, "method", domain.MethodAir, "AIR or SEA")
	cmd.Flags().StringVar(&in.Route, "route", "", "origin route (GUANGZHOU, YIWU, SHENZHEN)")
	cmd.Flags().StringVar(&in.Destination, "destination", "", "destination code, e.g. LAGOS_NIGERIA")
	cmd.Flags().StringVar(&in.EstimatedArrival, "eta", "", "estimated arrival (YYYY-MM-DD)")
	return cmd
}

// masterStatusCmd applies one tracking step; labels come from the active lookups.
func masterStatusCmd() *cobra.Command {
	var code, location, notes string
	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Move a master shipment to a tracking step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			code = domain.LookupCode(code)
			location = domain.LookupCode(location)
			if code == "" {
				return domain.ErrNoTrackingStatus
			}
			if location == "" {
				return domain.ErrNoLocation
			}

			statuses, err := api.TrackingStatuses(ctx)
			if err != nil {
				return err
			}
			locations, err := api.TrackingLocations(ctx)
			if err != nil {
				return err
			}

			upd, err := domain.BuildMasterStatusUpdate(domain.ActiveStatuses(statuses), domain.ActiveLocations(locations), code, location, notes)
			if err != nil {
				return err
			}
			if err := api.UpdateMasterShipmentStatus(ctx, args[0], upd); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Master shipment set to %s (%s)", view.Humanize(upd.Status), upd.Notes)
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "tracking status code")
	cmd.Flags().StringVar(&location, "location", "", "tracking location code")
	cmd.Flags().StringVar(&notes, "notes", "", "notes appended to the step label")
	return cmd
}

func formatIDs(ids []string) string { return fmt.Sprintf("%d shipment%s", len(ids), view.Plural(len(ids))) }
