package commands

import (
	"fmt"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"strings"

	"github.com/spf13/cobra"
)

func packagesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "packages", Short: "Inbound parcels"}
	cmd.AddCommand(packagesListCmd(), packagesUpdateCmd(), packagesBulkStatusCmd())
	return cmd
}

func packagesListCmd() *cobra.Command {
	var st, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs, err := api.Packages(cmd.Context(), st, search)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(pkgs))
			for _, p := range pkgs {
				rows = append(rows, []string{
					p.ID, p.TrackingNumber, p.User.FullName(),
					orDash(p.Description), status(p.Status), view.FormatDate(p.CreatedAt),
				})
			}
			printTable(cmd.OutOrStdout(), "No packages found",
				[]string{"ID", "Tracking", "Customer", "Description", "Status", "Received"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&st, "status", "", "filter by status ("+strings.Join(domain.PackageStatuses, ", ")+")")
	cmd.Flags().StringVar(&search, "search", "", "tracking number or customer")
	return cmd
}

// packagesUpdateCmd sends only the flags that were given.
func packagesUpdateCmd() *cobra.Command {
	var (
		st, description, notes string
		photos                 []string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a package's status, description, notes or photos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.PackageUpdate
			flags := cmd.Flags()
			if flags.Changed("status") {
				if !domain.Contains(domain.PackageStatuses, st) {
					return fmt.Errorf("invalid package status %q", st)
				}
				upd.Status = &st
			}
			if flags.Changed("description") {
				upd.Description = &description
			}
			if flags.Changed("notes") {
				upd.WarehouseNotes = &notes
			}
			if flags.Changed("photo") {
				urls := domain.ValidPhotoURLs(photos)
				upd.PhotoURLs = &urls
			}
			if upd.Empty() {
				return fmt.Errorf("nothing to update")
			}

			if err := api.UpdatePackage(cmd.Context(), args[0], upd); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Package updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&st, "status", "", "new status")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&notes, "notes", "", "warehouse notes")
	cmd.Flags().StringArrayVar(&photos, "photo", nil, "photo URL (repeat; replaces the list)")
	return cmd
}

func packagesBulkStatusCmd() *cobra.Command {
	var st string
	cmd := &cobra.Command{
		Use:   "bulk-status <id>...",
		Short: "Set one status on several packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.Contains(domain.PackageStatuses, st) {
				return fmt.Errorf("invalid package status %q", st)
			}
			if err := api.BulkUpdatePackageStatus(cmd.Context(), args, st); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "%d package%s set to %s", len(args), view.Plural(len(args)), view.Humanize(st))
			return nil
		},
	}
	cmd.Flags().StringVar(&st, "status", "", "new status")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}
