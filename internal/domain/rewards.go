package domain

import "time"

type Referral struct {
	ID           string     `json:"id"`
	ReferrerID   string     `json:"referrerId"`
	RefereeID    string     `json:"refereeId"`
	Status       string     `json:"status"`
	RewardAmount float64    `json:"rewardAmount"`
	RewardedAt   *time.Time `json:"rewardedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	Referrer     UserRef    `json:"referrer"`
	Referee      UserRef    `json:"referee"`
}

type TierPerks struct {
	Description        string  `json:"description"`
	FreightDiscount    float64 `json:"freightDiscount"`
	FreePacking        bool    `json:"freePacking"`
	PriorityProcessing bool    `json:"priorityProcessing"`
}

type LoyaltyTier struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Label        string    `json:"label"`
	MinShipments int       `json:"minShipments"`
	Perks        TierPerks `json:"perks"`
	SortOrder    int       `json:"sortOrder"`
	IsActive     bool      `json:"isActive"`
}

type LoyaltyTierUpdate struct {
	MinShipments int       `json:"minShipments"`
	Perks        TierPerks `json:"perks"`
}

// Wallet holds a customer's referral credit balance (NGN).
type Wallet struct {
	ID      string  `json:"id"`
	UserID  string  `json:"userId"`
	Balance float64 `json:"balance"`
	User    UserRef `json:"user"`
}

// WalletAdjustment credits or debits a wallet. Amount is always positive;
// the direction comes from the endpoint.
type WalletAdjustment struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type ReferralConfig struct {
	ID                string  `json:"id"`
	ReferrerRewardNGN float64 `json:"referrerRewardNGN"`
	RefereeRewardNGN  float64 `json:"refereeRewardNGN"`
	ExpiryDays        int     `json:"expiryDays"`
	IsActive          bool    `json:"isActive"`
}

type ReferralConfigUpdate struct {
	ReferrerRewardNGN float64 `json:"referrerRewardNGN"`
	RefereeRewardNGN  float64 `json:"refereeRewardNGN"`
	ExpiryDays        int     `json:"expiryDays"`
}
