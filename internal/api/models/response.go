package models

// SimulationResponse represents the response from a simulation run
type SimulationResponse struct {
	ID       string         `json:"id"`
	Status   string         `json:"status"`
	Scenario ScenarioEcho   `json:"scenario"`
	Summary  Summary        `json:"summary"`
	Ledger   []DaySampleRow `json:"ledger,omitempty"`
	Series   *ChartSeries   `json:"series,omitempty"`
}

// LedgerResponse is the ledger of a recently run simulation
type LedgerResponse struct {
	ID     string         `json:"id"`
	Ledger []DaySampleRow `json:"ledger"`
}

// ScenarioEcho is the fully resolved scenario that was simulated
type ScenarioEcho struct {
	Name                 string  `json:"name"`
	StartingCapital      float64 `json:"starting_capital"`
	DailyRatePercent     float64 `json:"daily_rate_percent"`
	DailyTakeoutPercent  float64 `json:"daily_takeout_percent"`
	WeeklyTakeoutPercent float64 `json:"weekly_takeout_percent"`
	Months               int     `json:"months"`
	Weeks                int     `json:"weeks"`
	HorizonDays          int     `json:"horizon_days"`
	ConversionRate       float64 `json:"conversion_rate"`
	StartDate            string  `json:"start_date"`
}

// Summary contains the headline numbers of a run
type Summary struct {
	HasData            bool      `json:"has_data"`
	TradingDays        int       `json:"trading_days"`
	StartDate          string    `json:"start_date,omitempty"`
	EndDate            string    `json:"end_date,omitempty"`
	StartingCapital    float64   `json:"starting_capital"`
	FinalCapital       float64   `json:"final_capital"`
	TotalTakeout       float64   `json:"total_takeout"`
	TotalDailyTakeout  float64   `json:"total_daily_takeout"`
	TotalWeeklyTakeout float64   `json:"total_weekly_takeout"`
	ConversionRate     float64   `json:"conversion_rate"`
	Converted          Converted `json:"converted"`
	Formatted          Formatted `json:"formatted"`
}

// Converted holds summary values in the secondary currency (INR)
type Converted struct {
	StartingCapital float64 `json:"starting_capital"`
	FinalCapital    float64 `json:"final_capital"`
	TotalTakeout    float64 `json:"total_takeout"`
}

// Formatted holds display strings; final values are empty when HasData is false
type Formatted struct {
	StartingCapitalINR  string `json:"starting_capital_inr"`
	FinalCapitalINR     string `json:"final_capital_inr,omitempty"`
	FinalCapitalUSD     string `json:"final_capital_usd,omitempty"`
	FinalCapitalCompact string `json:"final_capital_compact,omitempty"`
	TotalTakeoutINR     string `json:"total_takeout_inr,omitempty"`
	TotalTakeoutUSD     string `json:"total_takeout_usd,omitempty"`
	TotalTakeoutCompact string `json:"total_takeout_compact,omitempty"`
}

// DaySampleRow represents one trading day in the ledger
type DaySampleRow struct {
	Index             int     `json:"index"`
	Date              string  `json:"date"`
	Weekday           string  `json:"weekday"`
	CapitalBefore     float64 `json:"capital_before"`
	Profit            float64 `json:"profit"`
	DailyTakeout      float64 `json:"daily_takeout"`
	WeeklyTakeout     float64 `json:"weekly_takeout"`
	CapitalAfter      float64 `json:"capital_after"`
	CumulativeTakeout float64 `json:"cumulative_takeout"`
	TakeoutKind       string  `json:"takeout_kind"` // "NONE", "DAILY", "WEEKLY", "DAILY+WEEKLY"
}

// ChartSeries contains chart-ready columns
type ChartSeries struct {
	Dates             []string      `json:"dates"`
	Labels            []string      `json:"labels"`
	Capital           []float64     `json:"capital"`
	DailyTakeout      []float64     `json:"daily_takeout"`
	WeeklyTakeout     []float64     `json:"weekly_takeout"`
	CumulativeTakeout []float64     `json:"cumulative_takeout"`
	WeekendBands      []WeekendBand `json:"weekend_bands"`
}

// WeekendBand is a shaded Saturday-Sunday region
type WeekendBand struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	RankBy     string              `json:"rank_by"`
	Comparison []ComparisonResult  `json:"comparison"`
	Rejected   []RejectedVariation `json:"rejected,omitempty"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	ID       string       `json:"id"`
	Rank     int          `json:"rank"`
	Name     string       `json:"name"`
	Score    float64      `json:"score"`
	Scenario ScenarioEcho `json:"scenario"`
	Summary  Summary      `json:"summary"`
}

// RejectedVariation is a variation whose merged scenario failed validation
type RejectedVariation struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// PresetInfo represents information about a scenario preset
type PresetInfo struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	File     string       `json:"file"`
	Scenario ScenarioEcho `json:"scenario"`
}

// ParameterInfo describes an input parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Unit        string      `json:"unit,omitempty"`
	Description string      `json:"description"`
	Min         interface{} `json:"min,omitempty"`
	Max         interface{} `json:"max,omitempty"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
