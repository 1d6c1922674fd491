package handlers

import (
	"net/http"

	"growth-tracker/internal/api/models"
	"growth-tracker/internal/config"

	"github.com/gin-gonic/gin"
)

// ParameterHandler describes the scenario inputs
type ParameterHandler struct{}

// NewParameterHandler creates a new parameter handler
func NewParameterHandler() *ParameterHandler {
	return &ParameterHandler{}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParameterHandler) ListParameters(c *gin.Context) {
	def := config.DefaultScenario()
	parameters := []models.ParameterInfo{
		{
			Name:        "starting_capital",
			Type:        "float",
			Unit:        "USD",
			Description: "Capital in the account before the first trading day",
			Min:         "> 0",
			Default:     def.StartingCapital,
		},
		{
			Name:        "daily_rate_percent",
			Type:        "float",
			Unit:        "%",
			Description: "Return earned on open capital every trading day",
			Default:     def.DailyRatePercent,
		},
		{
			Name:        "daily_takeout_percent",
			Type:        "float",
			Unit:        "%",
			Description: "Share of each day's profit withdrawn at the close",
			Min:         0,
			Max:         100,
			Default:     def.DailyTakeoutPercent,
		},
		{
			Name:        "weekly_takeout_percent",
			Type:        "float",
			Unit:        "%",
			Description: "Share of capital withdrawn after every 5th trading day",
			Min:         0,
			Max:         100,
			Default:     def.WeeklyTakeoutPercent,
		},
		{
			Name:        "months",
			Type:        "int",
			Unit:        "20 trading days",
			Description: "Horizon length in trading months",
			Min:         0,
			Max:         config.MaxMonths,
			Default:     def.Months,
		},
		{
			Name:        "weeks",
			Type:        "int",
			Unit:        "5 trading days",
			Description: "Additional horizon length in trading weeks",
			Min:         0,
			Max:         config.MaxWeeks,
			Default:     def.Weeks,
		},
		{
			Name:        "conversion_rate",
			Type:        "float",
			Unit:        "INR per USD",
			Description: "Display-only rate for the INR figures",
			Min:         "> 0",
			Default:     def.ConversionRate,
		},
		{
			Name:        "start_date",
			Type:        "string",
			Description: "First calendar day considered (YYYY-MM-DD); weekends are skipped. Empty means today.",
		},
	}

	c.JSON(http.StatusOK, gin.H{"parameters": parameters})
}
