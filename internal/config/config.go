package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"growth-tracker/internal/calendar"
	"growth-tracker/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	MaxMonths = 12
	MaxWeeks  = 12
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the scenario from a separate YAML (e.g. examples/scenarios/*.yaml).
	// If both ScenarioFile and Scenario are provided, Scenario overrides ScenarioFile.
	ScenarioFile string         `yaml:"scenario_file,omitempty"`
	Scenario     ScenarioConfig `yaml:"scenario"`
}

// ScenarioConfig holds the inputs in user-facing units: percents rather
// than fractions, months and weeks rather than trading days.
type ScenarioConfig struct {
	Name                 string  `yaml:"name,omitempty"`
	StartingCapital      float64 `yaml:"starting_capital"`
	DailyRatePercent     float64 `yaml:"daily_rate_percent"`
	DailyTakeoutPercent  float64 `yaml:"daily_takeout_percent"`
	WeeklyTakeoutPercent float64 `yaml:"weekly_takeout_percent"`
	Months               int     `yaml:"months"`
	Weeks                int     `yaml:"weeks"`
	ConversionRate       float64 `yaml:"conversion_rate"`
	// StartDate is YYYY-MM-DD; empty means today.
	StartDate string `yaml:"start_date,omitempty"`
}

// DefaultScenario mirrors the stock inputs of the tracker.
func DefaultScenario() ScenarioConfig {
	return ScenarioConfig{
		Name:             "default",
		StartingCapital:  40000,
		DailyRatePercent: 10,
		Months:           0,
		Weeks:            1,
		ConversionRate:   64,
	}
}

func Default() *Config {
	return &Config{Scenario: DefaultScenario()}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Scenario.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

// ApplyDefaults fills unset values. Zero is meaningful for every other
// input, so only the conversion rate gets a default; configs that don't
// care about INR can leave it out.
func (c *Config) ApplyDefaults() {
	if c.Scenario.ConversionRate == 0 {
		c.Scenario.ConversionRate = DefaultScenario().ConversionRate
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Scenario.Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

// SaveToFile writes the config as YAML.
func (c *Config) SaveToFile(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (s ScenarioConfig) Validate() error {
	if s.StartingCapital <= 0 {
		return errors.New("starting_capital must be > 0")
	}
	if err := percent("daily_takeout_percent", s.DailyTakeoutPercent); err != nil {
		return err
	}
	if err := percent("weekly_takeout_percent", s.WeeklyTakeoutPercent); err != nil {
		return err
	}
	if s.Months < 0 || s.Months > MaxMonths {
		return fmt.Errorf("months must be in [0, %d]", MaxMonths)
	}
	if s.Weeks < 0 || s.Weeks > MaxWeeks {
		return fmt.Errorf("weeks must be in [0, %d]", MaxWeeks)
	}
	if s.ConversionRate <= 0 {
		return errors.New("conversion_rate must be > 0")
	}
	if _, err := s.StartTime(time.Now()); err != nil {
		return err
	}
	return s.ToModelParams().Validate()
}

func percent(name string, v float64) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%s must be in [0, 100]", name)
	}
	return nil
}

func (s ScenarioConfig) ToModelParams() model.SimulationParams {
	return model.SimulationParams{
		StartingCapital:       s.StartingCapital,
		DailyRate:             s.DailyRatePercent / 100,
		DailyTakeoutFraction:  s.DailyTakeoutPercent / 100,
		WeeklyTakeoutFraction: s.WeeklyTakeoutPercent / 100,
		HorizonDays:           calendar.HorizonDays(s.Months, s.Weeks),
	}
}

// StartTime resolves StartDate, defaulting to now. Parsed dates are
// placed in now's location.
func (s ScenarioConfig) StartTime(now time.Time) (time.Time, error) {
	if strings.TrimSpace(s.StartDate) == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s.StartDate), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", s.StartDate)
	}
	return t, nil
}

// ApplyEnv overlays GROWTH_* environment variables.
func (s *ScenarioConfig) ApplyEnv() error {
	if v := os.Getenv("GROWTH_STARTING_CAPITAL"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("GROWTH_STARTING_CAPITAL: %w", err)
		}
		s.StartingCapital = f
	}
	if v := os.Getenv("GROWTH_CONVERSION_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("GROWTH_CONVERSION_RATE: %w", err)
		}
		s.ConversionRate = f
	}
	if v := os.Getenv("GROWTH_START_DATE"); v != "" {
		s.StartDate = v
	}
	return nil
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a preset file of the form `scenario: {...}`.
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// Zero can therefore never override a non-zero base value; callers that
// need an explicit zero take the field from override directly.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.StartingCapital != 0 {
		out.StartingCapital = override.StartingCapital
	}
	if override.DailyRatePercent != 0 {
		out.DailyRatePercent = override.DailyRatePercent
	}
	if override.DailyTakeoutPercent != 0 {
		out.DailyTakeoutPercent = override.DailyTakeoutPercent
	}
	if override.WeeklyTakeoutPercent != 0 {
		out.WeeklyTakeoutPercent = override.WeeklyTakeoutPercent
	}
	if override.Months != 0 {
		out.Months = override.Months
	}
	if override.Weeks != 0 {
		out.Weeks = override.Weeks
	}
	if override.ConversionRate != 0 {
		out.ConversionRate = override.ConversionRate
	}
	if override.StartDate != "" {
		out.StartDate = override.StartDate
	}
	return out
}
