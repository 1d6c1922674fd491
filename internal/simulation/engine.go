package simulation

import (
	"time"

	"growth-tracker/internal/calendar"
	"growth-tracker/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes a compounding simulation over days and wraps the samples
// with their totals.
func (e *Engine) Run(days []time.Time, p model.SimulationParams) *Result {
	samples := Simulate(days, p)

	res := &Result{
		Samples:      samples,
		FinalCapital: p.StartingCapital,
	}
	for _, s := range samples {
		res.TotalDailyTakeout += s.DailyTakeout
		res.TotalWeeklyTakeout += s.WeeklyTakeout
	}
	if last, ok := res.Final(); ok {
		res.FinalCapital = last.CapitalAfter
		res.TotalTakeout = last.CumulativeTakeout
	}
	return res
}

// RunHorizon builds the trading calendar from start and runs p over it.
func (e *Engine) RunHorizon(start time.Time, p model.SimulationParams) *Result {
	return e.Run(calendar.Generate(start, p.HorizonDays), p)
}

// Simulate folds p over days, one sample per day.
//
// Each day compounds the open capital by DailyRate, withdraws
// DailyTakeoutFraction of that profit, and on every 5th trading day
// (counted from the first day, not aligned to calendar weeks) withdraws
// WeeklyTakeoutFraction of the resulting capital.
//
// Inputs are not validated; out-of-range params give well-defined but
// meaningless numbers.
func Simulate(days []time.Time, p model.SimulationParams) []model.DaySample {
	out := make([]model.DaySample, 0, len(days))
	capital := p.StartingCapital
	cum := 0.0

	for i, d := range days {
		before := capital
		profit := before * p.DailyRate
		daily := profit * p.DailyTakeoutFraction
		capital += profit - daily
		cum += daily

		weekly := 0.0
		boundary := (i+1)%calendar.TradingDaysPerWeek == 0
		if boundary {
			weekly = capital * p.WeeklyTakeoutFraction
			capital -= weekly
			cum += weekly
		}

		out = append(out, model.DaySample{
			Index:             i,
			Date:              d,
			CapitalBefore:     before,
			Profit:            profit,
			CapitalAfter:      capital,
			DailyTakeout:      daily,
			WeeklyTakeout:     weekly,
			CumulativeTakeout: cum,
			WeeklyBoundary:    boundary,
		})
	}
	return out
}
