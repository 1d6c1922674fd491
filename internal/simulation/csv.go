package simulation

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"growth-tracker/internal/model"
)

var ledgerHeader = []string{
	"index",
	"date",
	"weekday",
	"capital_before",
	"profit",
	"daily_takeout",
	"weekly_takeout",
	"capital_after",
	"cumulative_takeout",
	"takeout_kind",
}

// WriteLedgerCSVFile writes the ledger to path, creating parent dirs.
func WriteLedgerCSVFile(path string, samples []model.DaySample) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteLedgerCSV(f, samples); err != nil {
		return err
	}
	return f.Close()
}

func WriteLedgerCSV(out io.Writer, samples []model.DaySample) error {
	w := csv.NewWriter(out)

	if err := w.Write(ledgerHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Index),
			fmtDate(s.Date),
			s.Date.Weekday().String(),
			fmtFloat(s.CapitalBefore),
			fmtFloat(s.Profit),
			fmtFloat(s.DailyTakeout),
			fmtFloat(s.WeeklyTakeout),
			fmtFloat(s.CapitalAfter),
			fmtFloat(s.CumulativeTakeout),
			string(model.TakeoutKindOf(s)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
