package api

import (
	"net/http"

	"growth-tracker/internal/api/handlers"
	"growth-tracker/internal/api/middleware"
	"growth-tracker/internal/config"
	"growth-tracker/internal/simulation"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware, handlers and routes. A nil presets uses
// config.DefaultPresetDir(); a nil cache disables /simulate/:id/ledger.
func NewRouter(presets *config.PresetStore, cache *simulation.RunCache) *gin.Engine {
	router := gin.New()
	if gin.Mode() != gin.ReleaseMode {
		router.Use(gin.Logger())
	}

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	if presets == nil {
		presets = config.NewPresetStore(config.DefaultPresetDir())
	}

	// Initialize handlers
	simulationHandler := handlers.NewSimulationHandler(presets, cache)
	presetHandler := handlers.NewPresetHandler(presets)
	parameterHandler := handlers.NewParameterHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulationHandler.RunSimulation)
		api.POST("/simulate/compare", simulationHandler.CompareSimulations)
		api.POST("/simulate/report", simulationHandler.RenderReport)
		api.GET("/simulate/:id/ledger", simulationHandler.GetLedger)

		api.GET("/presets", presetHandler.ListPresets)
		api.GET("/parameters", parameterHandler.ListParameters)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
