package commands

import (
	"errors"
	"fmt"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func rewardsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "rewards", Short: "Referrals, loyalty tiers and wallets"}
	cmd.AddCommand(
		referralsCmd(), tiersCmd(), updateTierCmd(),
		walletsCmd(), walletAdjustCmd("credit"), walletAdjustCmd("debit"),
		referralConfigCmd(), setReferralConfigCmd(),
	)
	return cmd
}

func referralsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "referrals",
		Short: "List referrals",
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, err := api.Referrals(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(refs))
			for _, r := range refs {
				rows = append(rows, []string{
					r.Referrer.FullName(), r.Referee.FullName(), status(r.Status),
					view.FormatCurrency(r.RewardAmount, "NGN"), view.FormatDate(r.CreatedAt),
				})
			}
			printTable(cmd.OutOrStdout(), "No referrals yet",
				[]string{"Referrer", "Referee", "Status", "Reward", "Created"}, rows)
			return nil
		},
	}
}

func tiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List loyalty tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers, err := api.LoyaltyTiers(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(tiers))
			for _, t := range tiers {
				rows = append(rows, []string{
					t.ID, strings.TrimSpace(view.TierEmoji(t.Name) + " " + t.Label),
					strconv.Itoa(t.MinShipments), view.FormatNumber(t.Perks.FreightDiscount) + "%",
					yesNo(t.Perks.FreePacking), yesNo(t.Perks.PriorityProcessing), t.Perks.Description,
				})
			}
			printTable(cmd.OutOrStdout(), "No loyalty tiers configured",
				[]string{"ID", "Tier", "Min shipments", "Discount", "Free packing", "Priority", "Perks"}, rows)
			return nil
		},
	}
}

// updateTierCmd overlays the given flags on the tier's current values,
// since the backend replaces the perks as a whole.
func updateTierCmd() *cobra.Command {
	var (
		minShipments      int
		discount          float64
		description       string
		freePacking, rush bool
	)
	cmd := &cobra.Command{
		Use:   "update-tier <id>",
		Short: "Change a tier's threshold or perks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiers, err := api.LoyaltyTiers(cmd.Context())
			if err != nil {
				return err
			}
			var tier *domain.LoyaltyTier
			for i := range tiers {
				if tiers[i].ID == args[0] {
					tier = &tiers[i]
					break
				}
			}
			if tier == nil {
				return fmt.Errorf("loyalty tier %q not found", args[0])
			}

			upd := domain.LoyaltyTierUpdate{MinShipments: tier.MinShipments, Perks: tier.Perks}
			flags := cmd.Flags()
			if flags.Changed("min-shipments") {
				if minShipments < 0 {
					return errors.New("Enter the minimum number of shipments")
				}
				upd.MinShipments = minShipments
			}
			if flags.Changed("discount") {
				upd.Perks.FreightDiscount = discount
			}
			if flags.Changed("description") {
				upd.Perks.Description = strings.TrimSpace(description)
			}
			if flags.Changed("free-packing") {
				upd.Perks.FreePacking = freePacking
			}
			if flags.Changed("priority") {
				upd.Perks.PriorityProcessing = rush
			}

			if err := api.UpdateLoyaltyTier(cmd.Context(), tier.ID, upd); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "%s tier updated", tier.Label)
			return nil
		},
	}
	cmd.Flags().IntVar(&minShipments, "min-shipments", 0, "shipments needed to reach the tier")
	cmd.Flags().Float64Var(&discount, "discount", 0, "freight discount in percent")
	cmd.Flags().StringVar(&description, "description", "", "perks description")
	cmd.Flags().BoolVar(&freePacking, "free-packing", false, "packing is free")
	cmd.Flags().BoolVar(&rush, "priority", false, "priority processing")
	return cmd
}

func walletsCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "List customer wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			wallets, err := api.Wallets(cmd.Context(), search)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(wallets))
			for _, w := range wallets {
				rows = append(rows, []string{w.UserID, w.User.FullName(), w.User.Email, view.FormatCurrency(w.Balance, "NGN")})
			}
			printTable(cmd.OutOrStdout(), "No wallets found",
				[]string{"User ID", "Customer", "Email", "Balance"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "name or email")
	return cmd
}

// walletAdjustCmd builds "credit" or "debit"; the amount is always positive.
func walletAdjustCmd(direction string) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   direction + " <user-id> <amount>",
		Short: strings.ToUpper(direction[:1]) + direction[1:] + " a customer's wallet (NGN)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return domain.ErrInvalidAmount
			}
			adj := domain.WalletAdjustment{Amount: amount, Description: strings.TrimSpace(description)}
			if err := adj.Validate(); err != nil {
				return err
			}

			adjust := api.CreditWallet
			if direction == "debit" {
				adjust = api.DebitWallet
			}
			if err := adjust(cmd.Context(), args[0], adj); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Wallet %sed %s", direction, view.FormatCurrency(amount, "NGN"))
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "reason shown in the wallet history")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func referralConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the referral programme settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := api.ReferralConfig(cmd.Context())
			if err != nil {
				return err
			}
			if c == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Referral programme not configured")
				return nil
			}
			printFields(cmd.OutOrStdout(),
				"Referrer reward", view.FormatCurrency(c.ReferrerRewardNGN, "NGN"),
				"Referee reward", view.FormatCurrency(c.RefereeRewardNGN, "NGN"),
				"Expiry", strconv.Itoa(c.ExpiryDays)+" days",
				"State", activeWord(c.IsActive),
			)
			return nil
		},
	}
}

func setReferralConfigCmd() *cobra.Command {
	var upd domain.ReferralConfigUpdate
	cmd := &cobra.Command{
		Use:   "set-config",
		Short: "Change referral rewards and expiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if upd.ReferrerRewardNGN < 0 || upd.RefereeRewardNGN < 0 {
				return domain.ErrInvalidAmount
			}
			if err := api.UpdateReferralConfig(cmd.Context(), upd); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Referral settings saved")
			return nil
		},
	}
	cmd.Flags().Float64Var(&upd.ReferrerRewardNGN, "referrer-reward", 0, "reward for the referrer (NGN)")
	cmd.Flags().Float64Var(&upd.RefereeRewardNGN, "referee-reward", 0, "reward for the new customer (NGN)")
	cmd.Flags().IntVar(&upd.ExpiryDays, "expiry-days", 30, "days a referral stays valid")
	_ = cmd.MarkFlagRequired("referrer-reward")
	_ = cmd.MarkFlagRequired("referee-reward")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
