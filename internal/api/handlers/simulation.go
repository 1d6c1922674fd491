package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"growth-tracker/internal/analysis"
	"growth-tracker/internal/api/models"
	"growth-tracker/internal/config"
	"growth-tracker/internal/model"
	"growth-tracker/internal/report"
	"growth-tracker/internal/simulation"

	"github.com/gin-gonic/gin"
)

// SimulationHandler handles simulation-related requests
type SimulationHandler struct {
	presets *config.PresetStore
	cache   *simulation.RunCache
	engine  *simulation.Engine
	now     func() time.Time
}

// NewSimulationHandler creates a new simulation handler. cache may be nil,
// which disables ledger retrieval by id.
func NewSimulationHandler(presets *config.PresetStore, cache *simulation.RunCache) *SimulationHandler {
	return &SimulationHandler{
		presets: presets,
		cache:   cache,
		engine:  simulation.New(),
		now:     time.Now,
	}
}

// simulated is a resolved scenario together with its outcome.
type simulated struct {
	id       string
	scenario config.ScenarioConfig
	start    time.Time
	result   *simulation.Result
	summary  report.Summary
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	r, ok := h.resolveAndRun(c, req.Preset, req.Scenario)
	if !ok {
		return
	}

	response := models.SimulationResponse{
		ID:       r.id,
		Status:   "completed",
		Scenario: echoScenario(r.scenario, r.start),
		Summary:  buildSummary(r.summary),
	}
	if req.Options.IncludeLedger {
		response.Ledger = convertLedger(r.result.Samples)
	}
	if req.Options.IncludeSeries {
		response.Series = convertSeries(r.result.Samples)
	}

	log.Printf("SimulationHandler: %q simulated %d trading days", r.scenario.Name, r.result.Len())
	c.JSON(http.StatusOK, response)
}

// RenderReport handles POST /api/v1/simulate/report
func (h *SimulationHandler) RenderReport(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	r, ok := h.resolveAndRun(c, req.Preset, req.Scenario)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, r.summary, r.result.Samples); err != nil {
		log.Printf("SimulationHandler: Failed to render report: %v", err)
		abortError(c, http.StatusInternalServerError, "REPORT_ERROR", err.Error(), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, reportFilename(r.scenario.Name)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// CompareSimulations handles POST /api/v1/simulate/compare
func (h *SimulationHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	metric, err := analysis.ParseMetric(req.RankBy)
	if err != nil {
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	base, err := h.baseScenario(req.Preset)
	if err != nil {
		h.scenarioError(c, err)
		return
	}
	base = applyInput(base, req.Base)

	// Invalid variations are reported back instead of failing the whole request.
	rejected := []models.RejectedVariation{}
	outcomes := make([]analysis.Outcome, 0, len(req.Variations))
	echoes := make(map[string]models.ScenarioEcho, len(req.Variations))
	ids := make(map[string]string, len(req.Variations))

	for _, variation := range req.Variations {
		if _, dup := echoes[variation.Name]; dup {
			rejected = append(rejected, models.RejectedVariation{
				Name:  variation.Name,
				Error: "duplicate variation name",
			})
			continue
		}

		sc := applyInput(base, variation.Scenario)
		sc.Name = variation.Name
		r, err := h.run(sc)
		if err != nil {
			rejected = append(rejected, models.RejectedVariation{Name: variation.Name, Error: err.Error()})
			continue
		}

		echoes[variation.Name] = echoScenario(r.scenario, r.start)
		ids[variation.Name] = r.id
		outcomes = append(outcomes, analysis.Outcome{Name: variation.Name, Summary: r.summary})
	}

	ranked := analysis.Rank(outcomes, metric)
	comparison := make([]models.ComparisonResult, 0, len(ranked))
	for _, ro := range ranked {
		comparison = append(comparison, models.ComparisonResult{
			ID:       ids[ro.Name],
			Rank:     ro.Rank,
			Name:     ro.Name,
			Score:    ro.Score,
			Scenario: echoes[ro.Name],
			Summary:  buildSummary(ro.Summary),
		})
	}

	log.Printf("SimulationHandler: Compared %d variations (%d rejected) by %s", len(comparison), len(rejected), metric)
	c.JSON(http.StatusOK, models.CompareResponse{
		RankBy:     string(metric),
		Comparison: comparison,
		Rejected:   rejected,
	})
}

// GetLedger handles GET /api/v1/simulate/:id/ledger
// Runs are only kept for the cache TTL; after that the id is a 404.
func (h *SimulationHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		abortError(c, http.StatusNotFound, "RUN_NOT_FOUND",
			"Run not found or expired. Re-run the simulation with include_ledger=true.",
			map[string]interface{}{"id": id})
		return
	}
	c.JSON(http.StatusOK, models.LedgerResponse{
		ID:     id,
		Ledger: convertLedger(res.Samples),
	})
}

// Helper methods

// resolveAndRun writes the error response itself and reports false when
// the scenario could not be resolved.
func (h *SimulationHandler) resolveAndRun(c *gin.Context, preset string, in models.ScenarioInput) (*simulated, bool) {
	base, err := h.baseScenario(preset)
	if err != nil {
		h.scenarioError(c, err)
		return nil, false
	}
	r, err := h.run(applyInput(base, in))
	if err != nil {
		h.scenarioError(c, err)
		return nil, false
	}
	return r, true
}

// baseScenario is the preset if one is named, otherwise the defaults.
// A preset replaces the defaults entirely so its explicit zeros survive.
func (h *SimulationHandler) baseScenario(preset string) (config.ScenarioConfig, error) {
	if preset == "" {
		return config.DefaultScenario(), nil
	}
	if h.presets == nil {
		return config.ScenarioConfig{}, fmt.Errorf("%w: %s", config.ErrPresetNotFound, preset)
	}
	p, err := h.presets.Load(preset)
	if err != nil {
		return config.ScenarioConfig{}, err
	}
	return p.Scenario, nil
}

func (h *SimulationHandler) run(sc config.ScenarioConfig) (*simulated, error) {
	if err := sc.Validate(); err != nil {
		return nil, invalidParams{err}
	}
	start, err := sc.StartTime(h.now())
	if err != nil {
		return nil, invalidParams{err}
	}
	p := sc.ToModelParams()
	id := simulation.RunKey(start, p)
	res, ok := h.cache.Get(id)
	if !ok {
		res = h.engine.RunHorizon(start, p)
		if err := res.Check(); err != nil {
			return nil, invalidParams{fmt.Errorf("daily_rate_percent too large for this horizon: %w", err)}
		}
		h.cache.Set(id, res)
	}
	return &simulated{
		id:       id,
		scenario: sc,
		start:    start,
		result:   res,
		summary:  report.Summarize(p, res, sc.ConversionRate),
	}, nil
}

type invalidParams struct{ err error }

func (e invalidParams) Error() string { return e.err.Error() }
func (e invalidParams) Unwrap() error { return e.err }

func (h *SimulationHandler) scenarioError(c *gin.Context, err error) {
	var ip invalidParams
	switch {
	case errors.Is(err, config.ErrPresetNotFound):
		abortError(c, http.StatusNotFound, "PRESET_NOT_FOUND", err.Error(), nil)
	case errors.As(err, &ip):
		abortError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error(), nil)
	default:
		// Bad preset ids and unreadable preset files.
		log.Printf("SimulationHandler: Failed to resolve scenario: %v", err)
		abortError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
}

// applyInput overlays every field that was sent, zeros included.
func applyInput(sc config.ScenarioConfig, in models.ScenarioInput) config.ScenarioConfig {
	if in.Name != "" {
		sc.Name = in.Name
	}
	if in.StartingCapital != nil {
		sc.StartingCapital = *in.StartingCapital
	}
	if in.DailyRatePercent != nil {
		sc.DailyRatePercent = *in.DailyRatePercent
	}
	if in.DailyTakeoutPercent != nil {
		sc.DailyTakeoutPercent = *in.DailyTakeoutPercent
	}
	if in.WeeklyTakeoutPercent != nil {
		sc.WeeklyTakeoutPercent = *in.WeeklyTakeoutPercent
	}
	if in.Months != nil {
		sc.Months = *in.Months
	}
	if in.Weeks != nil {
		sc.Weeks = *in.Weeks
	}
	if in.ConversionRate != nil {
		sc.ConversionRate = *in.ConversionRate
	}
	if in.StartDate != "" {
		sc.StartDate = in.StartDate
	}
	return sc
}

func echoScenario(sc config.ScenarioConfig, start time.Time) models.ScenarioEcho {
	return models.ScenarioEcho{
		Name:                 sc.Name,
		StartingCapital:      sc.StartingCapital,
		DailyRatePercent:     sc.DailyRatePercent,
		DailyTakeoutPercent:  sc.DailyTakeoutPercent,
		WeeklyTakeoutPercent: sc.WeeklyTakeoutPercent,
		Months:               sc.Months,
		Weeks:                sc.Weeks,
		HorizonDays:          sc.ToModelParams().HorizonDays,
		ConversionRate:       sc.ConversionRate,
		StartDate:            start.Format(time.DateOnly),
	}
}

func buildSummary(s report.Summary) models.Summary {
	conv := s.Converted()
	summary := models.Summary{
		HasData:            s.HasData,
		TradingDays:        s.TradingDays,
		StartingCapital:    s.StartingCapital,
		FinalCapital:       s.FinalCapital,
		TotalTakeout:       s.TotalTakeout,
		TotalDailyTakeout:  s.TotalDailyTakeout,
		TotalWeeklyTakeout: s.TotalWeeklyTakeout,
		ConversionRate:     s.ConversionRate,
		Converted: models.Converted{
			StartingCapital: conv.StartingCapital,
			FinalCapital:    conv.FinalCapital,
			TotalTakeout:    conv.TotalTakeout,
		},
		Formatted: models.Formatted{
			StartingCapitalINR: report.FormatINR(conv.StartingCapital),
		},
	}
	if !s.HasData {
		return summary
	}

	summary.StartDate = s.StartDate.Format(time.DateOnly)
	summary.EndDate = s.EndDate.Format(time.DateOnly)
	summary.Formatted.FinalCapitalINR = report.FormatINR(conv.FinalCapital)
	summary.Formatted.FinalCapitalUSD = report.FormatUSD(s.FinalCapital)
	summary.Formatted.TotalTakeoutINR = report.FormatINR(conv.TotalTakeout)
	summary.Formatted.TotalTakeoutUSD = report.FormatUSD(s.TotalTakeout)
	summary.Formatted.FinalCapitalCompact = report.FormatCompactUSD(s.FinalCapital)
	summary.Formatted.TotalTakeoutCompact = report.FormatCompactUSD(s.TotalTakeout)
	return summary
}

func convertLedger(samples []model.DaySample) []models.DaySampleRow {
	result := make([]models.DaySampleRow, len(samples))
	for i, s := range samples {
		result[i] = models.DaySampleRow{
			Index:             s.Index,
			Date:              s.Date.Format(time.DateOnly),
			Weekday:           s.Date.Weekday().String(),
			CapitalBefore:     s.CapitalBefore,
			Profit:            s.Profit,
			DailyTakeout:      s.DailyTakeout,
			WeeklyTakeout:     s.WeeklyTakeout,
			CapitalAfter:      s.CapitalAfter,
			CumulativeTakeout: s.CumulativeTakeout,
			TakeoutKind:       string(model.TakeoutKindOf(s)),
		}
	}
	return result
}

func convertSeries(samples []model.DaySample) *models.ChartSeries {
	cs := report.Series(samples)
	dates := make([]string, len(cs.Dates))
	for i, d := range cs.Dates {
		dates[i] = d.Format(time.DateOnly)
	}
	bands := report.WeekendBands(samples)
	weekend := make([]models.WeekendBand, len(bands))
	for i, b := range bands {
		weekend[i] = models.WeekendBand{
			Start: b.Start.Format(time.DateOnly),
			End:   b.End.Format(time.DateOnly),
		}
	}
	return &models.ChartSeries{
		Dates:             dates,
		Labels:            cs.Labels,
		Capital:           cs.Capital,
		DailyTakeout:      cs.DailyTakeout,
		WeeklyTakeout:     cs.WeeklyTakeout,
		CumulativeTakeout: cs.CumulativeTakeout,
		WeekendBands:      weekend,
	}
}

func reportFilename(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	if slug == "" {
		slug = "growth"
	}
	return slug + "_report.pdf"
}

func abortError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
