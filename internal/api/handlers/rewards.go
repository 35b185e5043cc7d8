package handlers

import (
	"errors"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"net/http"
	"strings"
)

type RewardsHandler struct {
	*Base
}

type rewardsData struct {
	Tab       string
	Search    string
	Back      string
	Referrals []domain.Referral
	Tiers     []domain.LoyaltyTier
	Wallets   []domain.Wallet
	Config    *domain.ReferralConfig
}

func (h *RewardsHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	api := h.client(r)
	q := r.URL.Query()
	data := rewardsData{
		Tab:    q.Get("tab"),
		Search: strings.TrimSpace(q.Get("search")),
		Back:   r.URL.RequestURI(),
	}

	var err error
	switch data.Tab {
	case "tiers":
		data.Tiers, err = api.LoyaltyTiers(ctx)
	case "wallets":
		data.Wallets, err = api.Wallets(ctx, data.Search)
	case "config":
		data.Config, err = api.ReferralConfig(ctx)
	default:
		data.Tab = "referrals"
		data.Referrals, err = api.Referrals(ctx)
	}

	var alert string
	if err != nil {
		if toLogin(w, r, err) {
			return
		}
		alert = err.Error()
	}
	h.render(w, r, "rewards", "Rewards", alert, data)
}

func (h *RewardsHandler) UpdateTier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/rewards?tab=tiers")
	id := r.PathValue("id")

	minShipments, err := optionalInt(r, "min_shipments")
	if err != nil || minShipments == nil || *minShipments < 0 {
		h.fail(w, r, errors.New("Enter the minimum number of shipments"), back)
		return
	}
	discount, err := floatValue(r, "freight_discount")
	if err != nil {
		h.fail(w, r, err, back)
		return
	}
	upd := domain.LoyaltyTierUpdate{
		MinShipments: *minShipments,
		Perks: domain.TierPerks{
			Description:        strings.TrimSpace(r.FormValue("description")),
			FreightDiscount:    discount,
			FreePacking:        formBool(r, "free_packing"),
			PriorityProcessing: formBool(r, "priority_processing"),
		},
	}

	if err := h.client(r).UpdateLoyaltyTier(ctx, id, upd); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "loyalty_tier.update", "loyalty_tier", id, "")
	done(w, r, back)
}

// AdjustWallet credits or debits a wallet depending on the "direction" field.
func (h *RewardsHandler) AdjustWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/rewards?tab=wallets")
	userID := r.PathValue("userID")

	amount, err := optionalFloat(r, "amount")
	if err != nil || amount == nil {
		h.fail(w, r, domain.ErrInvalidAmount, back)
		return
	}
	adj := domain.WalletAdjustment{
		Amount:      *amount,
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if err := adj.Validate(); err != nil {
		h.fail(w, r, err, back)
		return
	}

	api := h.client(r)
	direction := r.FormValue("direction")
	switch direction {
	case "credit":
		err = api.CreditWallet(ctx, userID, adj)
	case "debit":
		err = api.DebitWallet(ctx, userID, adj)
	default:
		err = errors.New("Choose credit or debit")
	}
	if err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "wallet."+direction, "wallet", userID, view.FormatCurrency(adj.Amount, "NGN"))
	done(w, r, back)
}

func (h *RewardsHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	back := backTo(r, "/rewards?tab=config")

	var (
		upd domain.ReferralConfigUpdate
		err error
	)
	if upd.ReferrerRewardNGN, err = floatValue(r, "referrer_reward_ngn"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	if upd.RefereeRewardNGN, err = floatValue(r, "referee_reward_ngn"); err != nil {
		h.fail(w, r, err, back)
		return
	}
	days, err := optionalInt(r, "expiry_days")
	if err != nil || days == nil || *days <= 0 {
		h.fail(w, r, errors.New("Enter the expiry in days"), back)
		return
	}
	upd.ExpiryDays = *days

	if err := h.client(r).UpdateReferralConfig(ctx, upd); err != nil {
		h.fail(w, r, err, back)
		return
	}
	h.Audit.Record(ctx, "referral_config.update", "referral_config", "", "")
	done(w, r, back)
}
