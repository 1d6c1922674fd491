package report

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCompactUSD renders v with a K/M/B suffix and two decimals,
// e.g. $64.42K. Values below 1000 (including negatives) are printed in full.
func FormatCompactUSD(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	d := decimal.NewFromFloat(v)
	switch {
	case v >= 1e9:
		return "$" + d.Shift(-9).StringFixed(2) + "B"
	case v >= 1e6:
		return "$" + d.Shift(-6).StringFixed(2) + "M"
	case v >= 1e3:
		return "$" + d.Shift(-3).StringFixed(2) + "K"
	default:
		return "$" + d.StringFixed(2)
	}
}

// NotAvailable is printed in place of NaN and infinite amounts.
const NotAvailable = "n/a"

// FormatUSD renders v with thousands separators and cents, e.g. $64,420.40.
func FormatUSD(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	s := decimal.NewFromFloat(v).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	out := "$" + groupThousands(whole) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatINR rounds v to whole rupees and groups digits the Indian way:
// the last three digits, then pairs (₹1,23,45,678).
func FormatINR(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	s := decimal.NewFromFloat(v).Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	out := "₹" + groupIndian(s)
	if neg {
		return "-" + out
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	rest, last3 := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(rest) > 2 {
		parts = append([]string{rest[len(rest)-2:]}, parts...)
		rest = rest[:len(rest)-2]
	}
	parts = append([]string{rest}, parts...)
	return strings.Join(parts, ",") + "," + last3
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
