package calendar

import "time"

const (
	TradingDaysPerMonth = 20
	TradingDaysPerWeek  = 5
)

// Generate returns the first count trading days (Mon-Fri) on or after start.
// Dates keep start's clock time and location. No holiday calendar is applied.
func Generate(start time.Time, count int) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}
	out := make([]time.Time, 0, count)
	for d := start; len(out) < count; d = d.AddDate(0, 0, 1) {
		if IsTradingDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// IsTradingDay reports whether t falls on a weekday.
func IsTradingDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// HorizonDays converts month/week selectors into a trading-day count.
func HorizonDays(months, weeks int) int {
	return months*TradingDaysPerMonth + weeks*TradingDaysPerWeek
}
