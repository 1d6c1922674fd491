package model

import "time"

// DaySample captures what happened on one trading day.
type DaySample struct {
	Index int
	Date  time.Time

	CapitalBefore float64 // capital at the open, before profit and takeouts
	Profit        float64 // CapitalBefore * DailyRate
	CapitalAfter  float64 // after the daily and (if any) weekly takeout

	DailyTakeout      float64
	WeeklyTakeout     float64
	CumulativeTakeout float64

	// WeeklyBoundary is true on every 5th trading day, whether or not
	// anything was actually withdrawn.
	WeeklyBoundary bool
}

// TotalTakeout is everything withdrawn on this day.
func (s DaySample) TotalTakeout() float64 {
	return s.DailyTakeout + s.WeeklyTakeout
}
