package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"growth-tracker/internal/analysis"
	"growth-tracker/internal/config"
	"growth-tracker/internal/report"
	"growth-tracker/internal/simulation"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		presetDir string
		rankBy    string
		start     string
	)

	cmd := &cobra.Command{
		Use:   "compare [preset-id...]",
		Short: "Run presets side by side and rank them",
		Long:  "Runs every preset in the preset directory (or only the ids given) and prints them ranked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := analysis.ParseMetric(rankBy)
			if err != nil {
				return err
			}
			if presetDir == "" {
				presetDir = config.DefaultPresetDir()
			}
			store := config.NewPresetStore(presetDir)

			var presets []config.Preset
			if len(args) == 0 {
				if presets, err = store.List(); err != nil {
					return err
				}
			} else {
				for _, id := range args {
					p, err := store.Load(id)
					if err != nil {
						return err
					}
					presets = append(presets, p)
				}
			}
			if len(presets) == 0 {
				return fmt.Errorf("no presets found in %s", presetDir)
			}

			engine := simulation.New()
			outcomes := make([]analysis.Outcome, 0, len(presets))
			for _, p := range presets {
				sc := p.Scenario
				if start != "" {
					sc.StartDate = start
				}
				if err := sc.Validate(); err != nil {
					return fmt.Errorf("preset %s: %w", p.ID, err)
				}
				t0, err := sc.StartTime(time.Now())
				if err != nil {
					return err
				}
				params := sc.ToModelParams()
				res := engine.RunHorizon(t0, params)
				if err := res.Check(); err != nil {
					return fmt.Errorf("preset %s: %w", p.ID, err)
				}
				outcomes = append(outcomes, analysis.Outcome{
					Name:    p.ID,
					Summary: report.Summarize(params, res, sc.ConversionRate),
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "RANK\tPRESET\tDAYS\tFINAL\tTAKEN OUT\tSCORE (%s)\n", metric)
			for _, ro := range analysis.Rank(outcomes, metric) {
				s := ro.Summary
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
					ro.Rank, ro.Name, s.TradingDays,
					report.FormatUSD(s.FinalCapital), report.FormatUSD(s.TotalTakeout), report.FormatCompactUSD(ro.Score))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&presetDir, "preset-dir", "", "Preset directory (default $PRESET_DIR or ./examples/scenarios)")
	cmd.Flags().StringVar(&rankBy, "rank-by", "", "final_capital (default), total_takeout or total_value")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD applied to every preset")
	return cmd
}
