package simulation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"growth-tracker/internal/model"
)

// ErrOverflow is returned by Check when capital left the float64 range,
// which happens for large daily rates over long horizons.
var ErrOverflow = errors.New("capital overflowed")

// Result is the primary artifact of a run: the per-day samples plus totals.
// FinalCapital falls back to the starting capital when there are no samples.
type Result struct {
	Samples []model.DaySample

	FinalCapital       float64
	TotalTakeout       float64
	TotalDailyTakeout  float64
	TotalWeeklyTakeout float64
}

// Final returns the last sample, or false for an empty horizon.
func (r *Result) Final() (model.DaySample, bool) {
	if r == nil || len(r.Samples) == 0 {
		return model.DaySample{}, false
	}
	return r.Samples[len(r.Samples)-1], true
}

// Len is the number of simulated trading days.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Samples)
}

// Check reports ErrOverflow, with the first affected day, when any sample
// or total is NaN or infinite.
func (r *Result) Check() error {
	if r == nil {
		return nil
	}
	for _, s := range r.Samples {
		if !finite(s.CapitalAfter, s.Profit, s.DailyTakeout, s.WeeklyTakeout, s.CumulativeTakeout) {
			return fmt.Errorf("%w on day %d (%s)", ErrOverflow, s.Index, s.Date.Format(time.DateOnly))
		}
	}
	if !finite(r.FinalCapital, r.TotalTakeout, r.TotalDailyTakeout, r.TotalWeeklyTakeout) {
		return ErrOverflow
	}
	return nil
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
