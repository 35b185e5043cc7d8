package backend

import (
	"context"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/platform/obs"
	"net/http"
)

func (c *Client) Referrals(ctx context.Context) (_ []domain.Referral, err error) {
	defer obs.Time(ctx, "backend.Referrals")(&err)

	var out []domain.Referral
	err = c.call(ctx, http.MethodGet, "/admin/rewards/referrals", nil, &out)
	return out, err
}

func (c *Client) LoyaltyTiers(ctx context.Context) (_ []domain.LoyaltyTier, err error) {
	defer obs.Time(ctx, "backend.LoyaltyTiers")(&err)

	var out []domain.LoyaltyTier
	err = c.call(ctx, http.MethodGet, "/admin/rewards/tiers", nil, &out)
	return out, err
}

func (c *Client) UpdateLoyaltyTier(ctx context.Context, id string, upd domain.LoyaltyTierUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdateLoyaltyTier")(&err)
	return c.call(ctx, http.MethodPut, "/admin/rewards/tiers/"+escape(id), upd, nil)
}

func (c *Client) Wallets(ctx context.Context, search string) (_ []domain.Wallet, err error) {
	defer obs.Time(ctx, "backend.Wallets")(&err)

	var out []domain.Wallet
	err = c.call(ctx, http.MethodGet, "/admin/rewards/wallets"+query("search", search), nil, &out)
	return out, err
}

func (c *Client) CreditWallet(ctx context.Context, userID string, adj domain.WalletAdjustment) (err error) {
	defer obs.Time(ctx, "backend.CreditWallet")(&err)
	return c.call(ctx, http.MethodPost, "/admin/rewards/wallets/"+escape(userID)+"/credit", adj, nil)
}

func (c *Client) DebitWallet(ctx context.Context, userID string, adj domain.WalletAdjustment) (err error) {
	defer obs.Time(ctx, "backend.DebitWallet")(&err)
	return c.call(ctx, http.MethodPost, "/admin/rewards/wallets/"+escape(userID)+"/debit", adj, nil)
}

func (c *Client) ReferralConfig(ctx context.Context) (_ *domain.ReferralConfig, err error) {
	defer obs.Time(ctx, "backend.ReferralConfig")(&err)

	var out domain.ReferralConfig
	if err := c.call(ctx, http.MethodGet, "/admin/rewards/config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReferralConfig(ctx context.Context, upd domain.ReferralConfigUpdate) (err error) {
	defer obs.Time(ctx, "backend.UpdateReferralConfig")(&err)
	return c.call(ctx, http.MethodPut, "/admin/rewards/config", upd, nil)
}
