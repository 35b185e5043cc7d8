package commands

import (
	"context"
	"fmt"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func ratesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "rates", Short: "Shipping rates per category"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List shipping rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := api.ShippingRates(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(rates))
			for _, r := range rates {
				rows = append(rows, []string{
					r.ID, r.Label, "$" + view.FormatNumber(r.FreightCostUSD) + "/" + r.BillingUnit,
					view.FormatCurrency(r.ClearingCost, r.ClearingCurrency) + "/" + r.BillingUnit,
					"$" + view.FormatNumber(r.MinChargeUSD), activeWord(r.IsActive),
				})
			}
			printTable(cmd.OutOrStdout(), "No shipping rates configured",
				[]string{"ID", "Category", "Freight", "Clearing", "Minimum", "State"}, rows)
			return nil
		},
	}

	var (
		in      domain.NewShippingRate
		minimum float64
	)
	create := &cobra.Command{
		Use:   "create <category>",
		Short: "Add a rate for a category (" + rateCategoryNames() + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, ok := domain.LookupRateCategory(strings.ToUpper(args[0]))
			if !ok {
				return fmt.Errorf("unknown rate category %q", args[0])
			}
			in.Category, in.Label, in.BillingUnit, in.ClearingCurrency = cat.Value, cat.Label, cat.Unit, cat.Currency
			in.MinChargeUSD = changedFloat(cmd, "min-charge", minimum)
			if err := api.CreateShippingRate(cmd.Context(), in); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Rate for %s created", cat.Label)
			return nil
		},
	}
	create.Flags().Float64Var(&in.FreightCostUSD, "freight", 0, "freight cost in USD per unit")
	create.Flags().Float64Var(&in.ClearingCost, "clearing", 0, "clearing cost per unit in the category currency")
	create.Flags().Float64Var(&minimum, "min-charge", 0, "minimum charge in USD")
	create.Flags().StringVar(&in.Description, "description", "", "description")
	_ = create.MarkFlagRequired("freight")

	var (
		freight, clearing, updMinimum float64
		description                   string
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a rate's costs or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upd := domain.ShippingRateUpdate{
				FreightCostUSD: changedFloat(cmd, "freight", freight),
				ClearingCost:   changedFloat(cmd, "clearing", clearing),
				MinChargeUSD:   changedFloat(cmd, "min-charge", updMinimum),
			}
			if cmd.Flags().Changed("description") {
				d := domain.NullableString(strings.TrimSpace(description))
				upd.Description = &d
			}
			if err := api.UpdateShippingRate(cmd.Context(), args[0], upd); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Rate updated")
			return nil
		},
	}
	update.Flags().Float64Var(&freight, "freight", 0, "freight cost in USD per unit")
	update.Flags().Float64Var(&clearing, "clearing", 0, "clearing cost per unit")
	update.Flags().Float64Var(&updMinimum, "min-charge", 0, "minimum charge in USD")
	update.Flags().StringVar(&description, "description", "", "description (empty clears it)")

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Activate or deactivate a rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := api.ShippingRates(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range rates {
				if r.ID == args[0] {
					active := !r.IsActive
					if err := api.UpdateShippingRate(cmd.Context(), r.ID, domain.ShippingRateUpdate{IsActive: &active}); err != nil {
						return err
					}
					printDone(cmd.OutOrStdout(), "Rate %s", activeWord(active))
					return nil
				}
			}
			return fmt.Errorf("shipping rate %q not found", args[0])
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.DeleteShippingRate(cmd.Context(), args[0]); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Rate deleted")
			return nil
		},
	}

	cmd.AddCommand(list, create, update, toggle, remove)
	return cmd
}

func exchangeRatesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "exchange-rates", Short: "Currency conversion rates"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List exchange rates, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := api.ExchangeRates(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(rates))
			for _, r := range rates {
				rows = append(rows, []string{
					r.FromCurrency + " → " + r.ToCurrency,
					view.FormatCurrency(r.Rate, r.ToCurrency),
					view.FormatDate(r.EffectiveFrom), dateOrDash(r.EffectiveTo),
				})
			}
			printTable(cmd.OutOrStdout(), "No exchange rates configured",
				[]string{"Pair", "Rate", "From", "Until"}, rows)
			return nil
		},
	}

	var in domain.NewExchangeRate
	create := &cobra.Command{
		Use:   "create <from> <to> <rate>",
		Short: "Set a new rate, e.g. USD NGN 1550",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := strconv.ParseFloat(args[2], 64)
			if err != nil || rate <= 0 {
				return domain.ErrInvalidAmount
			}
			in = domain.NewExchangeRate{FromCurrency: strings.ToUpper(args[0]), ToCurrency: strings.ToUpper(args[1]), Rate: rate}
			if err := api.CreateExchangeRate(cmd.Context(), in); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "1 %s = %s", in.FromCurrency, view.FormatCurrency(in.Rate, in.ToCurrency))
			return nil
		},
	}

	cmd.AddCommand(list, create)
	return cmd
}

func trackingCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "tracking", Short: "Tracking statuses and locations"}

	statuses := &cobra.Command{
		Use:   "statuses",
		Short: "List tracking statuses",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := api.TrackingStatuses(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, s := range list {
				rows = append(rows, []string{s.ID, strconv.Itoa(s.SortOrder), s.Code, s.Label, s.Destination, activeWord(s.IsActive)})
			}
			printTable(cmd.OutOrStdout(), "No tracking statuses configured",
				[]string{"ID", "Order", "Code", "Label", "Destination", "State"}, rows)
			return nil
		},
	}

	locations := &cobra.Command{
		Use:   "locations",
		Short: "List tracking locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := api.TrackingLocations(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, l := range list {
				rows = append(rows, []string{l.ID, strconv.Itoa(l.SortOrder), l.Code, l.Label, orDash(l.Country), activeWord(l.IsActive)})
			}
			printTable(cmd.OutOrStdout(), "No tracking locations configured",
				[]string{"ID", "Order", "Code", "Label", "Country", "State"}, rows)
			return nil
		},
	}

	var st domain.NewTrackingStatus
	addStatus := &cobra.Command{
		Use:   "add-status <code> <label>",
		Short: "Add a tracking status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st.Code, st.Label = domain.LookupCode(args[0]), args[1]
			if err := api.CreateTrackingStatus(cmd.Context(), st); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Tracking status %s added", st.Code)
			return nil
		},
	}
	addStatus.Flags().StringVar(&st.Description, "description", "", "description")
	addStatus.Flags().IntVar(&st.SortOrder, "order", 0, "position on the timeline")
	addStatus.Flags().StringVar(&st.Destination, "destination", "ALL", "destination code or ALL")

	var loc domain.NewTrackingLocation
	addLocation := &cobra.Command{
		Use:   "add-location <code> <label>",
		Short: "Add a tracking location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc.Code, loc.Label = domain.LookupCode(args[0]), args[1]
			if err := api.CreateTrackingLocation(cmd.Context(), loc); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Tracking location %s added", loc.Code)
			return nil
		},
	}
	addLocation.Flags().StringVar(&loc.Country, "country", "", "country")
	addLocation.Flags().IntVar(&loc.SortOrder, "order", 0, "display order")

	toggle := &cobra.Command{
		Use:       "toggle <statuses|locations> <id>",
		Short:     "Activate or deactivate a tracking status or location",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"statuses", "locations"},
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := trackingKind(args[0])
			if err != nil {
				return err
			}
			active, err := k.active(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			flipped := !active
			if err := k.update(cmd.Context(), args[1], domain.LookupUpdate{IsActive: &flipped}); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Tracking %s %s", k.noun, activeWord(flipped))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <statuses|locations> <id>",
		Short: "Delete a tracking status or location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := trackingKind(args[0])
			if err != nil {
				return err
			}
			if err := k.remove(cmd.Context(), args[1]); err != nil {
				return err
			}
			printDone(cmd.OutOrStdout(), "Tracking %s deleted", k.noun)
			return nil
		},
	}

	cmd.AddCommand(statuses, locations, addStatus, addLocation, toggle, remove)
	return cmd
}

type trackingOps struct {
	noun   string
	active func(ctx context.Context, id string) (bool, error)
	update func(ctx context.Context, id string, upd domain.LookupUpdate) error
	remove func(ctx context.Context, id string) error
}

func trackingKind(kind string) (trackingOps, error) {
	switch kind {
	case "statuses", "status":
		return trackingOps{
			noun: "status",
			active: func(ctx context.Context, id string) (bool, error) {
				list, err := api.TrackingStatuses(ctx)
				for _, s := range list {
					if s.ID == id {
						return s.IsActive, nil
					}
				}
				if err == nil {
					err = fmt.Errorf("tracking status %q not found", id)
				}
				return false, err
			},
			update: api.UpdateTrackingStatus,
			remove: api.DeleteTrackingStatus,
		}, nil
	case "locations", "location":
		return trackingOps{
			noun: "location",
			active: func(ctx context.Context, id string) (bool, error) {
				list, err := api.TrackingLocations(ctx)
				for _, l := range list {
					if l.ID == id {
						return l.IsActive, nil
					}
				}
				if err == nil {
					err = fmt.Errorf("tracking location %q not found", id)
				}
				return false, err
			},
			update: api.UpdateTrackingLocation,
			remove: api.DeleteTrackingLocation,
		}, nil
	}
	return trackingOps{}, fmt.Errorf("unknown tracking kind %q (statuses or locations)", kind)
}

func activeWord(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func rateCategoryNames() string {
	names := make([]string, 0, len(domain.RateCategories))
	for _, c := range domain.RateCategories {
		names = append(names, c.Value)
	}
	return strings.Join(names, ", ")
}
