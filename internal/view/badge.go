package view

import "strings"

// BadgeColors is the Tailwind class triple used to render a status pill.
type BadgeColors struct {
	Bg   string
	Text string
	Dot  string
}

var fallbackBadge = BadgeColors{Bg: "bg-gray-50", Text: "text-gray-700", Dot: "bg-gray-500"}

var statusColors = map[string]BadgeColors{
	"EN_ROUTE":         {Bg: "bg-amber-50", Text: "text-amber-700", Dot: "bg-amber-500"},
	"ARRIVED":          {Bg: "bg-emerald-50", Text: "text-emerald-700", Dot: "bg-emerald-500"},
	"IN_SHIPMENT":      {Bg: "bg-blue-50", Text: "text-blue-700", Dot: "bg-blue-500"},
	"DELIVERED":        {Bg: "bg-violet-50", Text: "text-violet-700", Dot: "bg-violet-500"},
	"REQUESTED":        {Bg: "bg-orange-50", Text: "text-orange-700", Dot: "bg-orange-500"},
	"PROCESSING":       {Bg: "bg-cyan-50", Text: "text-cyan-700", Dot: "bg-cyan-500"},
	"SHIPPED":          {Bg: "bg-indigo-50", Text: "text-indigo-700", Dot: "bg-indigo-500"},
	"IN_TRANSIT":       {Bg: "bg-sky-50", Text: "text-sky-700", Dot: "bg-sky-500"},
	"OUT_FOR_DELIVERY": {Bg: "bg-teal-50", Text: "text-teal-700", Dot: "bg-teal-500"},
	"CANCELLED":        {Bg: "bg-red-50", Text: "text-red-700", Dot: "bg-red-500"},
	"PENDING":          {Bg: "bg-yellow-50", Text: "text-yellow-700", Dot: "bg-yellow-500"},
	"PAID":             {Bg: "bg-emerald-50", Text: "text-emerald-700", Dot: "bg-emerald-500"},
	"OVERDUE":          {Bg: "bg-red-50", Text: "text-red-700", Dot: "bg-red-500"},
}

// Badge returns the colors for status. Unknown statuses get the neutral gray triple.
func Badge(status string) BadgeColors {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return fallbackBadge
}

// KnownStatus reports whether status has its own entry in the badge table.
func KnownStatus(status string) bool {
	_, ok := statusColors[status]
	return ok
}

// Humanize turns an enum-like status into a label: every underscore becomes a space.
func Humanize(status string) string {
	return strings.ReplaceAll(status, "_", " ")
}

// Palette returns the Tailwind palette name behind a status ("amber", "gray", ...).
// Terminal renderers use it to pick an equivalent color.
func Palette(status string) string {
	c := Badge(status)
	name := strings.TrimPrefix(c.Dot, "bg-")
	if i := strings.LastIndexByte(name, '-'); i > 0 {
		name = name[:i]
	}
	return name
}

// PaymentBadge describes the payment column of the bills list.
type PaymentBadge struct {
	Label   string
	Classes string
	Pulse   bool
}

// PaymentState collapses a bill's status and latest payment status into the
// state shown on the bills list: PAID, PENDING, COMPLETED, FAILED or NO_PAYMENT.
func PaymentState(billStatus string, latestPaymentStatus string, hasPayment bool) string {
	if billStatus == "PAID" {
		return "PAID"
	}
	if !hasPayment {
		return "NO_PAYMENT"
	}
	return latestPaymentStatus
}

// PaymentBadgeFor maps a PaymentState to its label and classes.
func PaymentBadgeFor(state string) PaymentBadge {
	switch state {
	case "PAID":
		return PaymentBadge{Label: "Paid", Classes: "bg-emerald-50 text-emerald-700 border border-emerald-200"}
	case "PENDING":
		return PaymentBadge{Label: "Proof Uploaded", Classes: "bg-amber-50 text-amber-700 border border-amber-200", Pulse: true}
	case "COMPLETED":
		return PaymentBadge{Label: "Verified", Classes: "bg-emerald-50 text-emerald-700 border border-emerald-200"}
	case "FAILED":
		return PaymentBadge{Label: "Rejected", Classes: "bg-red-50 text-red-700 border border-red-200"}
	default:
		return PaymentBadge{Label: "Awaiting", Classes: "bg-surface-100 text-surface-500"}
	}
}

var referralColors = map[string]string{
	"PENDING":   "bg-amber-50 text-amber-700 border-amber-200",
	"QUALIFIED": "bg-blue-50 text-blue-700 border-blue-200",
	"REWARDED":  "bg-emerald-50 text-emerald-700 border-emerald-200",
	"EXPIRED":   "bg-surface-100 text-surface-500 border-surface-200",
}

// ReferralClasses returns the pill classes for a referral status.
func ReferralClasses(status string) string {
	if c, ok := referralColors[status]; ok {
		return c
	}
	return referralColors["EXPIRED"]
}

var tierEmojis = map[string]string{
	"BRONZE":   "🥉",
	"SILVER":   "🥈",
	"GOLD":     "🥇",
	"PLATINUM": "💎",
}

// TierEmoji returns the medal for a loyalty tier name, or "" when there is none.
func TierEmoji(name string) string {
	return tierEmojis[name]
}
