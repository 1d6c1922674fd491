package report

import (
	"time"

	"growth-tracker/internal/model"
	"growth-tracker/internal/simulation"
)

// Summary holds the headline numbers of a run in the account currency.
// When HasData is false the horizon was empty and FinalCapital and
// TotalTakeout carry no information.
type Summary struct {
	HasData bool

	StartingCapital    float64
	FinalCapital       float64
	TotalTakeout       float64
	TotalDailyTakeout  float64
	TotalWeeklyTakeout float64

	ConversionRate float64

	TradingDays int
	StartDate   time.Time
	EndDate     time.Time
}

// Converted is a Summary rescaled into the secondary currency.
type Converted struct {
	StartingCapital float64
	FinalCapital    float64
	TotalTakeout    float64
}

// Summarize reduces res to its headline numbers. conversionRate is INR per USD.
func Summarize(p model.SimulationParams, res *simulation.Result, conversionRate float64) Summary {
	s := Summary{
		StartingCapital: p.StartingCapital,
		ConversionRate:  conversionRate,
	}
	last, ok := res.Final()
	if !ok {
		return s
	}
	s.HasData = true
	s.FinalCapital = last.CapitalAfter
	s.TotalTakeout = last.CumulativeTakeout
	s.TotalDailyTakeout = res.TotalDailyTakeout
	s.TotalWeeklyTakeout = res.TotalWeeklyTakeout
	s.TradingDays = res.Len()
	s.StartDate = res.Samples[0].Date
	s.EndDate = last.Date
	return s
}

func (s Summary) Converted() Converted {
	return Converted{
		StartingCapital: s.StartingCapital * s.ConversionRate,
		FinalCapital:    s.FinalCapital * s.ConversionRate,
		TotalTakeout:    s.TotalTakeout * s.ConversionRate,
	}
}
