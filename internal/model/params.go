package model

import (
	"errors"
	"math"
)

// SimulationParams defines the inputs of a compounding run.
// Units:
// - StartingCapital: account currency ($)
// - DailyRate: fraction per trading day (0.10 = 10%)
// - DailyTakeoutFraction: share of each day's profit withdrawn, 0..1
// - WeeklyTakeoutFraction: share of capital withdrawn every 5th trading day, 0..1
// - HorizonDays: number of trading days
type SimulationParams struct {
	StartingCapital       float64
	DailyRate             float64
	DailyTakeoutFraction  float64
	WeeklyTakeoutFraction float64
	HorizonDays           int
}

// Validate checks the params at the calling boundary.
// The engine itself accepts anything and never calls this.
func (p SimulationParams) Validate() error {
	if !finite(p.StartingCapital, p.DailyRate, p.DailyTakeoutFraction, p.WeeklyTakeoutFraction) {
		return errors.New("params must be finite numbers")
	}
	if p.StartingCapital <= 0 {
		return errors.New("StartingCapital must be > 0")
	}
	if p.DailyTakeoutFraction < 0 || p.DailyTakeoutFraction > 1 {
		return errors.New("DailyTakeoutFraction must be in [0, 1]")
	}
	if p.WeeklyTakeoutFraction < 0 || p.WeeklyTakeoutFraction > 1 {
		return errors.New("WeeklyTakeoutFraction must be in [0, 1]")
	}
	if p.HorizonDays < 0 {
		return errors.New("HorizonDays must be >= 0")
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
