package report

import (
	"time"

	"growth-tracker/internal/model"
)

// HoverLayout is the per-point label shown on charts, e.g. "Mon, Jan 02".
const HoverLayout = "Mon, Jan 02"

// Band is a shaded weekend region on a date axis. AfterIndex is the
// Friday sample the band follows, for index-based axes.
type Band struct {
	Start      time.Time
	End        time.Time
	AfterIndex int
}

// WeekendBands returns one Saturday-to-Monday band after every Friday
// sample except the last one.
func WeekendBands(samples []model.DaySample) []Band {
	out := []Band{}
	for i := 0; i < len(samples)-1; i++ {
		d := samples[i].Date
		if d.Weekday() != time.Friday {
			continue
		}
		out = append(out, Band{
			Start:      d.AddDate(0, 0, 1),
			End:        d.AddDate(0, 0, 3),
			AfterIndex: i,
		})
	}
	return out
}

// ChartSeries is the column view of a run consumed by charts.
type ChartSeries struct {
	Dates             []time.Time
	Labels            []string
	Capital           []float64
	DailyTakeout      []float64
	WeeklyTakeout     []float64
	CumulativeTakeout []float64
}

func Series(samples []model.DaySample) ChartSeries {
	n := len(samples)
	cs := ChartSeries{
		Dates:             make([]time.Time, n),
		Labels:            make([]string, n),
		Capital:           make([]float64, n),
		DailyTakeout:      make([]float64, n),
		WeeklyTakeout:     make([]float64, n),
		CumulativeTakeout: make([]float64, n),
	}
	for i, s := range samples {
		cs.Dates[i] = s.Date
		cs.Labels[i] = s.Date.Format(HoverLayout)
		cs.Capital[i] = s.CapitalAfter
		cs.DailyTakeout[i] = s.DailyTakeout
		cs.WeeklyTakeout[i] = s.WeeklyTakeout
		cs.CumulativeTakeout[i] = s.CumulativeTakeout
	}
	return cs
}
