package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeKnownStatuses(t *testing.T) {
	cases := map[string]BadgeColors{
		"EN_ROUTE":         {"bg-amber-50", "text-amber-700", "bg-amber-500"},
		"ARRIVED":          {"bg-emerald-50", "text-emerald-700", "bg-emerald-500"},
		"IN_SHIPMENT":      {"bg-blue-50", "text-blue-700", "bg-blue-500"},
		"DELIVERED":        {"bg-violet-50", "text-violet-700", "bg-violet-500"},
		"REQUESTED":        {"bg-orange-50", "text-orange-700", "bg-orange-500"},
		"PROCESSING":       {"bg-cyan-50", "text-cyan-700", "bg-cyan-500"},
		"SHIPPED":          {"bg-indigo-50", "text-indigo-700", "bg-indigo-500"},
		"IN_TRANSIT":       {"bg-sky-50", "text-sky-700", "bg-sky-500"},
		"OUT_FOR_DELIVERY": {"bg-teal-50", "text-teal-700", "bg-teal-500"},
		"CANCELLED":        {"bg-red-50", "text-red-700", "bg-red-500"},
		"PENDING":          {"bg-yellow-50", "text-yellow-700", "bg-yellow-500"},
		"PAID":             {"bg-emerald-50", "text-emerald-700", "bg-emerald-500"},
		"OVERDUE":          {"bg-red-50", "text-red-700", "bg-red-500"},
	}

	assert.Len(t, statusColors, len(cases))
	for status, want := range cases {
		assert.Equal(t, want, Badge(status), status)
		assert.True(t, KnownStatus(status), status)
	}
}

func TestBadgeFallsBackToGray(t *testing.T) {
	gray := BadgeColors{Bg: "bg-gray-50", Text: "text-gray-700", Dot: "bg-gray-500"}
	for _, status := range []string{"", "UNKNOWN", "in_transit", "NO_PAYMENT", "PAID "} {
		assert.Equal(t, gray, Badge(status), "status %q", status)
		assert.False(t, KnownStatus(status))
	}
}

func TestHumanizeReplacesEveryUnderscore(t *testing.T) {
	assert.Equal(t, "OUT FOR DELIVERY", Humanize("OUT_FOR_DELIVERY"))
	assert.Equal(t, "PAID", Humanize("PAID"))
	assert.Equal(t, "  A ", Humanize("__A_"))
	assert.Equal(t, "", Humanize(""))
}

func TestPalette(t *testing.T) {
	assert.Equal(t, "amber", Palette("EN_ROUTE"))
	assert.Equal(t, "emerald", Palette("PAID"))
	assert.Equal(t, "gray", Palette("WHATEVER"))
}

func TestPaymentBadge(t *testing.T) {
	assert.Equal(t, "PAID", PaymentState("PAID", "PENDING", true))
	assert.Equal(t, "NO_PAYMENT", PaymentState("PENDING", "", false))
	assert.Equal(t, "FAILED", PaymentState("OVERDUE", "FAILED", true))

	assert.Equal(t, "Proof Uploaded", PaymentBadgeFor("PENDING").Label)
	assert.True(t, PaymentBadgeFor("PENDING").Pulse)
	assert.Equal(t, "Verified", PaymentBadgeFor("COMPLETED").Label)
	assert.Equal(t, "Rejected", PaymentBadgeFor("FAILED").Label)
	assert.Equal(t, "Awaiting", PaymentBadgeFor("NO_PAYMENT").Label)
}

func TestReferralAndTierDecorations(t *testing.T) {
	assert.Contains(t, ReferralClasses("QUALIFIED"), "bg-blue-50")
	assert.Equal(t, ReferralClasses("EXPIRED"), ReferralClasses("SOMETHING"))
	assert.Equal(t, "💎", TierEmoji("PLATINUM"))
	assert.Empty(t, TierEmoji("IRON"))
}
