package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"growth-tracker/internal/config"
	"growth-tracker/internal/report"
	"growth-tracker/internal/simulation"

	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		cfgPath   string
		preset    string
		presetDir string
		outPath   string
		pdfPath   string

		// Overrides; only flags that were set are applied.
		ov config.ScenarioConfig
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scenario and print the summary",
		Example: "  growth simulate --config examples/config.yaml --out results/ledger.csv\n" +
			"  growth simulate --preset weekly_half --months 3 --pdf results/report.pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" && preset != "" {
				return errors.New("use either --config or --preset, not both")
			}

			sc, err := baseScenario(cfgPath, preset, presetDir)
			if err != nil {
				return err
			}
			applyFlags(cmd, &sc, ov)
			if err := sc.Validate(); err != nil {
				return fmt.Errorf("scenario config invalid: %w", err)
			}

			start, err := sc.StartTime(time.Now())
			if err != nil {
				return err
			}
			p := sc.ToModelParams()
			res := simulation.New().RunHorizon(start, p)
			if err := res.Check(); err != nil {
				return fmt.Errorf("simulate %q: %w", sc.Name, err)
			}
			summary := report.Summarize(p, res, sc.ConversionRate)

			out := cmd.OutOrStdout()
			if outPath != "" {
				if err := simulation.WriteLedgerCSVFile(outPath, res.Samples); err != nil {
					return fmt.Errorf("write ledger: %w", err)
				}
				fmt.Fprintf(out, "Wrote %d rows to %s\n", res.Len(), outPath)
			}
			if pdfPath != "" {
				if err := writePDF(pdfPath, summary, res); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				fmt.Fprintf(out, "Wrote report to %s\n", pdfPath)
			}
			return report.WriteText(out, summary)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "Path to YAML config")
	f.StringVar(&preset, "preset", "", "Preset id (file name in the preset dir, without .yaml)")
	f.StringVar(&presetDir, "preset-dir", "", "Preset directory (default $PRESET_DIR or ./examples/scenarios)")
	f.StringVar(&outPath, "out", "", "Optional: write the per-day ledger CSV here")
	f.StringVar(&pdfPath, "pdf", "", "Optional: write a PDF report here")

	f.StringVar(&ov.Name, "name", "", "Scenario name")
	f.Float64Var(&ov.StartingCapital, "capital", 0, "Starting capital (USD)")
	f.Float64Var(&ov.DailyRatePercent, "rate", 0, "Daily return (%)")
	f.Float64Var(&ov.DailyTakeoutPercent, "daily-takeout", 0, "Share of daily profit withdrawn (%)")
	f.Float64Var(&ov.WeeklyTakeoutPercent, "weekly-takeout", 0, "Share of capital withdrawn every 5th trading day (%)")
	f.IntVar(&ov.Months, "months", 0, "Horizon months (20 trading days each)")
	f.IntVar(&ov.Weeks, "weeks", 0, "Horizon weeks (5 trading days each)")
	f.Float64Var(&ov.ConversionRate, "conversion", 0, "INR per USD")
	f.StringVar(&ov.StartDate, "start", "", "Start date YYYY-MM-DD (default today)")

	return cmd
}

func baseScenario(cfgPath, preset, presetDir string) (config.ScenarioConfig, error) {
	switch {
	case cfgPath != "":
		c, err := config.LoadUnchecked(cfgPath)
		if err != nil {
			return config.ScenarioConfig{}, err
		}
		c.ApplyDefaults()
		if err := c.Scenario.ApplyEnv(); err != nil {
			return config.ScenarioConfig{}, err
		}
		return c.Scenario, nil
	case preset != "":
		if presetDir == "" {
			presetDir = config.DefaultPresetDir()
		}
		p, err := config.NewPresetStore(presetDir).Load(preset)
		if err != nil {
			return config.ScenarioConfig{}, err
		}
		return p.Scenario, nil
	default:
		sc := config.DefaultScenario()
		if err := sc.ApplyEnv(); err != nil {
			return config.ScenarioConfig{}, err
		}
		return sc, nil
	}
}

// applyFlags copies explicitly set flags onto sc, so --weeks 0 still wins.
func applyFlags(cmd *cobra.Command, sc *config.ScenarioConfig, ov config.ScenarioConfig) {
	set := cmd.Flags().Changed
	if set("name") {
		sc.Name = ov.Name
	}
	if set("capital") {
		sc.StartingCapital = ov.StartingCapital
	}
	if set("rate") {
		sc.DailyRatePercent = ov.DailyRatePercent
	}
	if set("daily-takeout") {
		sc.DailyTakeoutPercent = ov.DailyTakeoutPercent
	}
	if set("weekly-takeout") {
		sc.WeeklyTakeoutPercent = ov.WeeklyTakeoutPercent
	}
	if set("months") {
		sc.Months = ov.Months
	}
	if set("weeks") {
		sc.Weeks = ov.Weeks
	}
	if set("conversion") {
		sc.ConversionRate = ov.ConversionRate
	}
	if set("start") {
		sc.StartDate = ov.StartDate
	}
}

func writePDF(path string, s report.Summary, res *simulation.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WritePDF(f, s, res.Samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
