package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"growth-tracker/internal/config"
	"growth-tracker/internal/model"
	"growth-tracker/internal/report"
	"growth-tracker/internal/simulation"
)

// Demo:
// - Build the stock scenario (or load one with --config)
// - Generate the trading calendar from --start
// - Print the first few days to show how capital and takeouts evolve
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	start := flag.String("start", "", "Start date YYYY-MM-DD (default today)")
	n := flag.Int("n", 12, "Number of days to print")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV (e.g. results/ledger.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	sc := config.DefaultScenario()
	sc.WeeklyTakeoutPercent = 50
	sc.Weeks = 3

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fail(err)
		}
		sc = cfg.Scenario
	}
	if *start != "" {
		sc.StartDate = *start
	}
	if err := sc.Validate(); err != nil {
		fail(err)
	}

	startTime, err := sc.StartTime(time.Now())
	if err != nil {
		fail(err)
	}
	p := sc.ToModelParams()
	res := simulation.New().RunHorizon(startTime, p)
	if err := res.Check(); err != nil {
		fail(err)
	}

	fmt.Printf("Scenario=%s  capital=%s  rate=%.2f%%  daily takeout=%.2f%%  weekly takeout=%.2f%%\n",
		sc.Name, report.FormatUSD(p.StartingCapital), sc.DailyRatePercent, sc.DailyTakeoutPercent, sc.WeeklyTakeoutPercent)
	fmt.Printf("Horizon=%d trading days from %s\n\n", p.HorizonDays, startTime.Format(time.DateOnly))

	for i := 0; i < min(*n, res.Len()); i++ {
		s := res.Samples[i]
		fmt.Printf(
			"%3d %s %s  before=%12.2f  profit=%10.2f  daily=%9.2f  weekly=%10.2f  after=%12.2f  cum=%12.2f  %s\n",
			s.Index,
			s.Date.Format(time.DateOnly),
			s.Date.Weekday().String()[:3],
			s.CapitalBefore,
			s.Profit,
			s.DailyTakeout,
			s.WeeklyTakeout,
			s.CapitalAfter,
			s.CumulativeTakeout,
			model.TakeoutKindOf(s),
		)
	}

	if *outCSV != "" {
		if err := simulation.WriteLedgerCSVFile(*outCSV, res.Samples); err != nil {
			fail(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Final capital=%s  Total taken out=%s\n",
		report.FormatUSD(res.FinalCapital), report.FormatUSD(res.TotalTakeout))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
