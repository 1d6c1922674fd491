package analysis

import (
	"fmt"
	"sort"

	"growth-tracker/internal/report"
)

// Metric selects the number variations are ranked by.
type Metric string

const (
	MetricFinalCapital Metric = "final_capital"
	MetricTotalTakeout Metric = "total_takeout"
	// MetricTotalValue is capital still in the account plus everything withdrawn.
	MetricTotalValue Metric = "total_value"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case "":
		return MetricFinalCapital, nil
	case MetricFinalCapital, MetricTotalTakeout, MetricTotalValue:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("unknown rank metric %q", s)
	}
}

// Outcome is one named variation's summary.
type Outcome struct {
	Name    string
	Summary report.Summary
}

type RankedOutcome struct {
	Rank  int
	Score float64
	Outcome
}

func (m Metric) Score(s report.Summary) float64 {
	switch m {
	case MetricTotalTakeout:
		return s.TotalTakeout
	case MetricTotalValue:
		return s.FinalCapital + s.TotalTakeout
	default:
		if !s.HasData {
			return s.StartingCapital
		}
		return s.FinalCapital
	}
}

// Rank sorts outcomes descending by metric. Ties keep input order.
func Rank(outcomes []Outcome, m Metric) []RankedOutcome {
	out := make([]RankedOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, RankedOutcome{Score: m.Score(o.Summary), Outcome: o})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
