package report

import (
	"fmt"
	"io"
	"time"
)

// WriteText prints the summary block shown by the CLI.
func WriteText(w io.Writer, s Summary) error {
	conv := s.Converted()
	lines := []string{
		fmt.Sprintf("Starting Capital (INR):  %s", FormatINR(conv.StartingCapital)),
		fmt.Sprintf("Starting Capital ($):    %s", FormatUSD(s.StartingCapital)),
	}
	if !s.HasData {
		lines = append(lines, "No trading days in horizon; nothing simulated.")
	} else {
		lines = append(lines,
			fmt.Sprintf("Final Capital (INR):     %s", FormatINR(conv.FinalCapital)),
			fmt.Sprintf("Final Capital ($):       %s (%s)", FormatCompactUSD(s.FinalCapital), FormatUSD(s.FinalCapital)),
			fmt.Sprintf("Total Taken Out (INR):   %s", FormatINR(conv.TotalTakeout)),
			fmt.Sprintf("Total Taken Out ($):     %s (daily %s, weekly %s)",
				FormatCompactUSD(s.TotalTakeout), FormatUSD(s.TotalDailyTakeout), FormatUSD(s.TotalWeeklyTakeout)),
			fmt.Sprintf("Trading days:            %d (%s to %s)",
				s.TradingDays, s.StartDate.Format(time.DateOnly), s.EndDate.Format(time.DateOnly)),
		)
	}
	lines = append(lines, fmt.Sprintf("Conversion rate:         %.2f INR/USD", s.ConversionRate))

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
