package main

import (
	"fmt"
	"log"
	"os"

	"growth-tracker/internal/api"
	"growth-tracker/internal/config"
	"growth-tracker/internal/simulation"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Log the preset directory up front; a wrong PRESET_DIR otherwise only
	// shows up as an empty /api/v1/presets.
	presetDir := config.DefaultPresetDir()
	if info, err := os.Stat(presetDir); err == nil && info.IsDir() {
		log.Printf("Preset directory found: %s", presetDir)
	} else {
		log.Printf("Preset directory not found at: %s (error: %v)", presetDir, err)
	}

	// Recent runs are kept in memory so their ledgers can be fetched by id.
	cache := simulation.RunCacheFromEnv()
	if cache != nil {
		schedule := os.Getenv("CACHE_PRUNE_SCHEDULE")
		if schedule == "" {
			schedule = simulation.DefaultPruneSchedule
		}
		janitor, err := cache.Janitor(schedule)
		if err != nil {
			log.Fatalf("Failed to schedule cache pruning: %v", err)
		}
		janitor.Start()
		defer janitor.Stop()
		log.Printf("Run cache enabled, pruning %s", schedule)
	} else {
		log.Printf("Run cache disabled (SIMULATION_CACHE_TTL=0)")
	}

	router := api.NewRouter(config.NewPresetStore(presetDir), cache)

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
