package commands

import (
	"fmt"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func pickupsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "pickups", Short: "Pickup requests and bookable slots"}
	cmd.AddCommand(
		pickupsListCmd(), pickupsStatusCmd(),
		pickupSlotsCmd(), pickupCreateSlotCmd(), pickupBulkSlotsCmd(),
		pickupToggleSlotCmd(), pickupDeleteSlotCmd(),
	)
	return cmd
}

func pickupsListCmd() *cobra.Command {
	var st, date string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pickup requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := api.PickupRequests(cmd.Context(), st, date)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(reqs))
			for _, p := range reqs {
				who := p.User.FullName()
				if p.DelegateName != nil && *p.DelegateName != "" {
					who += " (via " + *p.DelegateName + ")"
				}
				rows = append(rows, []string{
					p.ID, p.Shipment.ShipmentNumber, who,
					view.FormatDay(p.ScheduledDate) + " " + view.FormatTime(p.ScheduledTime),
					p.WarehouseName, status(p.Status),
				})
			}
			printTable(cmd.OutOrStdout(), "No pickup requests found",
				[]string{"ID", "Shipment", "Collected by", "Scheduled", "Warehouse", "Status"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&st, "status", "", "filter by status ("+strings.Join(domain.PickupStatuses, ", ")+")")
	cmd.Flags().StringVar(&date, "date", "", "scheduled date (YYYY-MM-DD)")
	return cmd
}

func pickupsStatusCmd() *cobra.Command {
	var upd domain.PickupStatusUpdate
	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Change a pickup request's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.Contains(domain.PickupStatuses, upd.Status) {
				return fmt.Errorf("invalid pickup status %q", upd.Status)
			}
			if err := api.UpdatePickupStatus(cmd.Context(), args[0], upd); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Pickup set to %s", view.Humanize(upd.Status))
			return nil
		},
	}
	cmd.Flags().StringVar(&upd.Status, "status", "", "new status")
	cmd.Flags().StringVar(&upd.Notes, "notes", "", "notes")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func pickupSlotsCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List pickup slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := api.PickupSlots(cmd.Context(), date)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(slots))
			for _, s := range slots {
				state := "active"
				switch {
				case !s.IsActive:
					state = "inactive"
				case s.Full():
					state = "full"
				}
				rows = append(rows, []string{
					s.ID, view.FormatDay(s.Date),
					view.FormatTime(s.StartTime) + " - " + view.FormatTime(s.EndTime),
					strconv.Itoa(s.BookedCount) + "/" + strconv.Itoa(s.MaxPickups), state,
				})
			}
			printTable(cmd.OutOrStdout(), "No pickup slots found",
				[]string{"ID", "Date", "Window", "Booked", "State"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "slot date (YYYY-MM-DD)")
	return cmd
}

func pickupCreateSlotCmd() *cobra.Command {
	var (
		in    domain.NewPickupSlot
		limit int
	)
	cmd := &cobra.Command{
		Use:   "create-slot",
		Short: "Create one pickup window",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.MaxPickups = changedInt(cmd, "max-pickups", limit)
			if err := api.CreatePickupSlot(cmd.Context(), in); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Slot created")
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.StartTime, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&in.EndTime, "end", "", "end time (HH:MM)")
	cmd.Flags().IntVar(&limit, "max-pickups", 0, "bookings allowed (backend default when unset)")
	for _, f := range []string{"date", "start", "end"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

// pickupBulkSlotsCmd takes windows as HH:MM-HH:MM arguments.
func pickupBulkSlotsCmd() *cobra.Command {
	var (
		date  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "bulk-slots <start-end>...",
		Short: "Create several windows on one date, e.g. 09:00-11:00 14:00-16:00",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.BulkPickupSlots{Date: date, MaxPickups: changedInt(cmd, "max-pickups", limit)}
			for _, a := range args {
				start, end, _ := strings.Cut(a, "-")
				in.Slots = append(in.Slots, domain.SlotTime{StartTime: strings.TrimSpace(start), EndTime: strings.TrimSpace(end)})
			}
			if err := in.Validate(); err != nil {
				return err
			}
			if err := api.BulkCreatePickupSlots(cmd.Context(), in); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "%d slot%s created", len(in.Slots), view.Plural(len(in.Slots)))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "max-pickups", 0, "bookings allowed per window")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

// pickupToggleSlotCmd looks the slot up to flip its current state.
func pickupToggleSlotCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "toggle-slot <id>",
		Short: "Activate or deactivate a pickup slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := api.PickupSlots(cmd.Context(), date)
			if err != nil {
				return err
			}
			for _, s := range slots {
				if s.ID != args[0] {
					continue
				}
				active := !s.IsActive
				if err := api.UpdatePickupSlot(cmd.Context(), s.ID, domain.PickupSlotUpdate{IsActive: &active}); err != nil {
					return err
				}
				word := "deactivated"
				if active {
					word = "activated"
				}
				printDone(cmd.OutOrStdout(), "Slot %s", word)
				return nil
			}
			return fmt.Errorf("pickup slot %q not found", args[0])
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "slot date, narrows the lookup")
	return cmd
}

func pickupDeleteSlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-slot <id>",
		Short: "Delete a pickup slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.DeletePickupSlot(cmd.Context(), args[0]); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Slot deleted")
			return nil
		},
	}
}
