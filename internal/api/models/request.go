package models

// SimulationRequest represents the request body for running a simulation.
// The scenario is built from defaults, then the preset (if any), then the
// explicit fields of Scenario.
type SimulationRequest struct {
	Preset   string            `json:"preset,omitempty"`
	Scenario ScenarioInput     `json:"scenario,omitempty"`
	Options  SimulationOptions `json:"options,omitempty"`
}

// ScenarioInput mirrors config.ScenarioConfig. Pointer fields distinguish
// "not sent" from an explicit zero.
type ScenarioInput struct {
	Name                 string   `json:"name,omitempty"`
	StartingCapital      *float64 `json:"starting_capital,omitempty" binding:"omitempty,gt=0"`
	DailyRatePercent     *float64 `json:"daily_rate_percent,omitempty"`
	DailyTakeoutPercent  *float64 `json:"daily_takeout_percent,omitempty" binding:"omitempty,gte=0,lte=100"`
	WeeklyTakeoutPercent *float64 `json:"weekly_takeout_percent,omitempty" binding:"omitempty,gte=0,lte=100"`
	Months               *int     `json:"months,omitempty" binding:"omitempty,gte=0,lte=12"`
	Weeks                *int     `json:"weeks,omitempty" binding:"omitempty,gte=0,lte=12"`
	ConversionRate       *float64 `json:"conversion_rate,omitempty" binding:"omitempty,gt=0"`
	StartDate            string   `json:"start_date,omitempty"` // YYYY-MM-DD, empty = today
}

// SimulationOptions contains optional output parameters
type SimulationOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
	IncludeSeries bool `json:"include_series,omitempty"` // chart columns + weekend bands
}

// CompareRequest represents a request to compare scenario variations
type CompareRequest struct {
	Preset     string              `json:"preset,omitempty"`
	Base       ScenarioInput       `json:"base,omitempty"`
	Variations []ScenarioVariation `json:"variations" binding:"required,min=1,dive"`
	RankBy     string              `json:"rank_by,omitempty"` // final_capital (default), total_takeout, total_value
}

// ScenarioVariation defines a variation to test on top of the base
type ScenarioVariation struct {
	Name     string        `json:"name" binding:"required"`
	Scenario ScenarioInput `json:"scenario"`
}
