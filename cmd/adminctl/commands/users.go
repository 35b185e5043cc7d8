package commands

import (
	"naiyuan-admin/internal/view"
	"strconv"

	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Customer and staff accounts"}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := api.Users(cmd.Context(), search)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				verified := "no"
				if u.IsVerified {
					verified = "yes"
				}
				rows = append(rows, []string{
					u.FullName(), u.Email, orDash(u.Phone), u.Role, verified,
					strconv.Itoa(u.Count.Packages), strconv.Itoa(u.Count.Shipments), view.FormatDate(u.CreatedAt),
				})
			}
			printTable(cmd.OutOrStdout(), "No users found",
				[]string{"Name", "Email", "Phone", "Role", "Verified", "Packages", "Shipments", "Joined"}, rows)
			return nil
		},
	}
	list.Flags().StringVar(&search, "search", "", "name or email")

	cmd.AddCommand(list)
	return cmd
}
