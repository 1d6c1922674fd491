package simulation

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"growth-tracker/internal/calendar"
	"growth-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func baseline(horizon int) model.SimulationParams {
	return model.SimulationParams{
		StartingCapital: 40000,
		DailyRate:       0.10,
		HorizonDays:     horizon,
	}
}

func TestSimulatePureCompounding(t *testing.T) {
	t.Parallel()

	p := baseline(5)
	samples := Simulate(calendar.Generate(monday, 5), p)
	require.Len(t, samples, 5)

	assert.InDelta(t, 64420.40, samples[4].CapitalAfter, 1e-6)
	assert.True(t, samples[4].WeeklyBoundary)
	assert.Zero(t, samples[4].WeeklyTakeout)
	assert.Zero(t, samples[4].CumulativeTakeout)

	for i, s := range samples {
		want := p.StartingCapital * math.Pow(1+p.DailyRate, float64(i+1))
		assert.InEpsilon(t, want, s.CapitalAfter, 1e-12, "day %d", i)
	}
}

func TestSimulateWeeklyTakeoutHalf(t *testing.T) {
	t.Parallel()

	p := baseline(5)
	p.WeeklyTakeoutFraction = 0.5
	samples := Simulate(calendar.Generate(monday, 5), p)
	require.Len(t, samples, 5)

	last := samples[4]
	assert.InDelta(t, 64420.40, last.CapitalBefore*1.1, 1e-6)
	assert.InDelta(t, 32210.20, last.WeeklyTakeout, 1e-6)
	assert.InDelta(t, 32210.20, last.CapitalAfter, 1e-6)
	assert.InDelta(t, 32210.20, last.CumulativeTakeout, 1e-6)
	for _, s := range samples[:4] {
		assert.Zero(t, s.WeeklyTakeout)
		assert.False(t, s.WeeklyBoundary)
	}
}

func TestSimulateDailyTakeout(t *testing.T) {
	t.Parallel()

	p := baseline(2)
	p.DailyTakeoutFraction = 0.25
	samples := Simulate(calendar.Generate(monday, 2), p)
	require.Len(t, samples, 2)

	// Day 1: profit 4000, take 1000, keep 3000.
	assert.InDelta(t, 4000, samples[0].Profit, 1e-9)
	assert.InDelta(t, 1000, samples[0].DailyTakeout, 1e-9)
	assert.InDelta(t, 43000, samples[0].CapitalAfter, 1e-9)
	// Day 2: profit on 43000 before withdrawal.
	assert.InDelta(t, 4300, samples[1].Profit, 1e-9)
	assert.InDelta(t, 1075, samples[1].DailyTakeout, 1e-9)
	assert.InDelta(t, 46225, samples[1].CapitalAfter, 1e-9)
	assert.InDelta(t, 2075, samples[1].CumulativeTakeout, 1e-9)
}

func TestSimulateInvariants(t *testing.T) {
	t.Parallel()

	p := model.SimulationParams{
		StartingCapital:       40000,
		DailyRate:             0.03,
		DailyTakeoutFraction:  0.2,
		WeeklyTakeoutFraction: 0.1,
		HorizonDays:           calendar.HorizonDays(12, 12),
	}
	// Start on a Wednesday so the 5-day cadence is off the calendar week.
	days := calendar.Generate(monday.AddDate(0, 0, 2), p.HorizonDays)
	samples := Simulate(days, p)
	require.Len(t, samples, len(days))

	running := 0.0
	prev := 0.0
	for i, s := range samples {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, days[i], s.Date)
		running += s.DailyTakeout + s.WeeklyTakeout
		assert.InEpsilon(t, running, s.CumulativeTakeout, 1e-9, "day %d", i)
		assert.GreaterOrEqual(t, s.CumulativeTakeout, prev)
		prev = s.CumulativeTakeout

		if (i+1)%5 == 0 {
			assert.NotZero(t, s.WeeklyTakeout, "day %d", i)
		} else {
			assert.Zero(t, s.WeeklyTakeout, "day %d", i)
		}
		if i > 0 {
			assert.Equal(t, samples[i-1].CapitalAfter, s.CapitalBefore)
		}
	}
}

func TestSimulateZeroRateKeepsCapital(t *testing.T) {
	t.Parallel()

	p := baseline(10)
	p.DailyRate = 0
	p.DailyTakeoutFraction = 0.5
	samples := Simulate(calendar.Generate(monday, 10), p)
	for _, s := range samples {
		assert.Equal(t, 40000.0, s.CapitalAfter)
		assert.Zero(t, s.DailyTakeout)
	}
}

func TestSimulateEmpty(t *testing.T) {
	t.Parallel()

	samples := Simulate(nil, baseline(0))
	assert.NotNil(t, samples)
	assert.Empty(t, samples)

	res := New().RunHorizon(monday, baseline(0))
	_, ok := res.Final()
	assert.False(t, ok)
	assert.Equal(t, 0, res.Len())
	assert.Equal(t, 40000.0, res.FinalCapital)
	assert.Zero(t, res.TotalTakeout)
}

func TestEngineRunTotals(t *testing.T) {
	t.Parallel()

	p := baseline(10)
	p.DailyTakeoutFraction = 0.1
	p.WeeklyTakeoutFraction = 0.2
	res := New().RunHorizon(monday, p)
	require.Equal(t, 10, res.Len())

	last, ok := res.Final()
	require.True(t, ok)
	assert.Equal(t, last.CapitalAfter, res.FinalCapital)
	assert.Equal(t, last.CumulativeTakeout, res.TotalTakeout)
	assert.InDelta(t, res.TotalTakeout, res.TotalDailyTakeout+res.TotalWeeklyTakeout, 1e-9)
}

func TestSimulateDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	days := calendar.Generate(monday, 5)
	snapshot := append([]time.Time(nil), days...)
	_ = Simulate(days, baseline(5))
	assert.Equal(t, snapshot, days)
}

func TestWriteLedgerCSV(t *testing.T) {
	t.Parallel()

	p := baseline(5)
	p.WeeklyTakeoutFraction = 0.5
	samples := Simulate(calendar.Generate(monday, 5), p)

	var buf bytes.Buffer
	require.NoError(t, WriteLedgerCSV(&buf, samples))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, ledgerHeader, rows[0])
	assert.Equal(t, "2024-01-01", rows[1][1])
	assert.Equal(t, "Monday", rows[1][2])
	assert.Equal(t, "NONE", rows[1][9])
	assert.Equal(t, "32210.200000", rows[5][6])
	assert.Equal(t, "WEEKLY", rows[5][9])
}

func TestWriteLedgerCSVFileCreatesDirs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results", "ledger.csv")
	samples := Simulate(calendar.Generate(monday, 3), baseline(3))
	require.NoError(t, WriteLedgerCSVFile(path, samples))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "cumulative_takeout")
}

func TestResultCheckOverflow(t *testing.T) {
	p := model.SimulationParams{StartingCapital: 40000, DailyRate: 10, HorizonDays: 300}
	res := New().RunHorizon(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p)
	err := res.Check()
	require.ErrorIs(t, err, ErrOverflow)
	assert.Contains(t, err.Error(), "on day")

	p.DailyRate = 0.1
	assert.NoError(t, New().RunHorizon(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p).Check())

	var empty *Result
	assert.NoError(t, empty.Check())
}
