package cli

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSimulateDefaults(t *testing.T) {
	out, err := execute(t, "simulate", "--start", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Starting Capital (INR):  ₹25,60,000")
	assert.Contains(t, out, "$64.42K ($64,420.40)")
	assert.Contains(t, out, "2024-01-01 to 2024-01-05")
}

func TestSimulateOverridesAndOutputs(t *testing.T) {
	dir := t.TempDir()
	ledger := filepath.Join(dir, "out", "ledger.csv")
	pdf := filepath.Join(dir, "out", "report.pdf")

	out, err := execute(t, "simulate",
		"--start", "2024-01-01",
		"--weekly-takeout", "50",
		"--weeks", "2",
		"--out", ledger,
		"--pdf", pdf,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 10 rows to "+ledger)

	f, err := os.Open(ledger)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 11)
	assert.Equal(t, "index", rows[0][0])
	assert.Equal(t, "32210.200000", rows[5][7])
	assert.Equal(t, "WEEKLY", rows[5][9])

	raw, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestSimulateExplicitZeroHorizon(t *testing.T) {
	out, err := execute(t, "simulate", "--weeks", "0", "--start", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "No trading days")
}

func TestSimulateFromConfigAndPreset(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("scenario:\n  starting_capital: 40000\n  daily_rate_percent: 10\n  weeks: 1\n  start_date: \"2024-01-01\"\n"), 0o644))

	out, err := execute(t, "simulate", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "$64,420.40")
	assert.Contains(t, out, "64.00 INR/USD")

	presets := filepath.Join(dir, "presets")
	require.NoError(t, os.MkdirAll(presets, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(presets, "half.yaml"), []byte("scenario:\n  starting_capital: 40000\n  daily_rate_percent: 10\n  weekly_takeout_percent: 50\n  weeks: 1\n"), 0o644))

	out, err = execute(t, "simulate", "--preset", "half", "--preset-dir", presets, "--start", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "$32,210.20")

	_, err = execute(t, "simulate", "--config", cfg, "--preset", "half")
	assert.ErrorContains(t, err, "either --config or --preset")
}

func TestSimulateRejectsInvalid(t *testing.T) {
	_, err := execute(t, "simulate", "--capital", "0")
	assert.ErrorContains(t, err, "starting_capital")

	_, err = execute(t, "simulate", "--months", "13")
	assert.ErrorContains(t, err, "months")

	_, err = execute(t, "simulate", "--start", "01/02/2024")
	assert.ErrorContains(t, err, "start_date")
}

func TestSimulateRejectsOverflow(t *testing.T) {
	_, err := execute(t, "simulate", "--rate", "1000", "--months", "12", "--weeks", "12", "--start", "2024-01-01")
	require.Error(t, err)
	assert.ErrorContains(t, err, "capital overflowed")
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("keep.yaml", "scenario:\n  starting_capital: 40000\n  daily_rate_percent: 10\n  weeks: 1\n")
	write("half.yaml", "scenario:\n  starting_capital: 40000\n  daily_rate_percent: 10\n  weekly_takeout_percent: 50\n  weeks: 1\n")

	out, err := execute(t, "compare", "--preset-dir", dir, "--start", "2024-01-01")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "SCORE (final_capital)")
	assert.Contains(t, lines[1], "keep")
	assert.Contains(t, lines[1], "$64,420.40")
	assert.Contains(t, lines[2], "half")

	out, err = execute(t, "compare", "--preset-dir", dir, "--start", "2024-01-01", "--rank-by", "total_takeout", "half")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "$32,210.20")

	_, err = execute(t, "compare", "--preset-dir", dir, "--rank-by", "sharpe")
	assert.ErrorContains(t, err, "unknown rank metric")

	_, err = execute(t, "compare", "--preset-dir", t.TempDir())
	assert.ErrorContains(t, err, "no presets")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	out, err := execute(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = execute(t, "config", "init", "-o", path)
	assert.ErrorContains(t, err, "already exists")
	_, err = execute(t, "config", "init", "-o", path, "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "OK: \"default\", 5 trading days\n", out)

	_, err = execute(t, "config", "validate")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "growth ("))
}
