package view

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// CurrencySymbol is the symbol used on bill breakdowns: NGN and GHS have their own,
// everything else is shown in dollars.
func CurrencySymbol(currency string) string {
	switch currency {
	case "NGN":
		return "₦"
	case "GHS":
		return "GH₵"
	default:
		return "$"
	}
}

var rateSymbols = map[string]string{
	"NGN": "₦",
	"GHS": "GH₵",
	"USD": "$",
}

// RateSymbol is the symbol used on the settings pages. Unknown currencies
// fall back to their code.
func RateSymbol(currency string) string {
	if s, ok := rateSymbols[currency]; ok {
		return s
	}
	return currency
}

// FormatNumber groups thousands and keeps at most three fraction digits,
// trimming trailing zeros ("1234.5" -> "1,234.5").
func FormatNumber(v float64) string {
	return trimFraction(printer.Sprintf("%.3f", v))
}

// FormatCurrency renders amount with the currency's symbol and no forced
// fraction digits. An empty currency means NGN.
func FormatCurrency(amount float64, currency string) string {
	if currency == "" {
		currency = "NGN"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + RateSymbol(currency) + trimFraction(printer.Sprintf("%.2f", amount))
}

// FormatMoney is FormatCurrency with the bill breakdown's symbol rule.
func FormatMoney(amount float64, currency string) string {
	return CurrencySymbol(currency) + FormatNumber(amount)
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatDate renders a date the way the console lists show it ("2 Jan 2026").
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("2 Jan 2006")
}

// FormatDateTime is FormatDate with the time of day.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("2 Jan 2006, 15:04")
}

// FormatDay formats a date-only or RFC 3339 string. Unparseable input is returned as is.
func FormatDay(s string) string {
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return FormatDate(t)
		}
	}
	return s
}

// FormatTime turns a 24h "HH:MM" slot time into "H:MM AM/PM".
func FormatTime(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour
	switch {
	case hour > 12:
		display = hour - 12
	case hour == 0:
		display = 12
	}
	return strconv.Itoa(display) + ":" + parts[1] + " " + period
}

// BadgeCount is the sidebar counter text; counts above 99 collapse to "99+".
func BadgeCount(n int) string {
	if n > 99 {
		return "99+"
	}
	return strconv.Itoa(n)
}

// Plural returns "s" unless n is exactly one.
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
