package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "₦", CurrencySymbol("NGN"))
	assert.Equal(t, "GH₵", CurrencySymbol("GHS"))
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "$", CurrencySymbol("EUR"))
	assert.Equal(t, "$", CurrencySymbol(""))

	assert.Equal(t, "EUR", RateSymbol("EUR"))
	assert.Equal(t, "$", RateSymbol("USD"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "1,234.5", FormatNumber(1234.5))
	assert.Equal(t, "0.125", FormatNumber(0.125))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₦250,000", FormatCurrency(250000, ""))
	assert.Equal(t, "GH₵1,200.5", FormatCurrency(1200.5, "GHS"))
	assert.Equal(t, "-$3", FormatCurrency(-3, "USD"))
	assert.Equal(t, "₦1,500", FormatMoney(1500, "NGN"))
	assert.Equal(t, "$12.75", FormatMoney(12.75, "CNY"))
}

func TestFormatDates(t *testing.T) {
	ts := time.Date(2026, 3, 7, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "7 Mar 2026", FormatDate(ts))
	assert.Equal(t, "7 Mar 2026, 14:05", FormatDateTime(ts))
	assert.Equal(t, "—", FormatDate(time.Time{}))
	assert.Equal(t, "7 Mar 2026", FormatDay("2026-03-07T00:00:00.000Z"))
	assert.Equal(t, "7 Mar 2026", FormatDay("2026-03-07"))
	assert.Equal(t, "soon", FormatDay("soon"))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "2:30 PM", FormatTime("14:30"))
	assert.Equal(t, "12:00 AM", FormatTime("00:00"))
	assert.Equal(t, "12:15 PM", FormatTime("12:15"))
	assert.Equal(t, "9:00 AM", FormatTime("09:00"))
	assert.Equal(t, "noon", FormatTime("noon"))
}

func TestBadgeCount(t *testing.T) {
	assert.Equal(t, "0", BadgeCount(0))
	assert.Equal(t, "99", BadgeCount(99))
	assert.Equal(t, "99+", BadgeCount(100))
}
