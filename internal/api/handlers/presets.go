package handlers

import (
	"log"
	"net/http"
	"time"

	"growth-tracker/internal/api/models"
	"growth-tracker/internal/config"

	"github.com/gin-gonic/gin"
)

// PresetHandler handles preset-related requests
type PresetHandler struct {
	store *config.PresetStore
	now   func() time.Time
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(store *config.PresetStore) *PresetHandler {
	log.Printf("PresetHandler: Using preset directory: %s", store.Dir)
	return &PresetHandler{store: store, now: time.Now}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets, err := h.store.List()
	if err != nil {
		// An unreadable directory lists as empty, like a missing one.
		log.Printf("PresetHandler: Failed to read preset directory %s: %v", h.store.Dir, err)
		c.JSON(http.StatusOK, gin.H{"presets": []models.PresetInfo{}})
		return
	}

	now := h.now()
	out := make([]models.PresetInfo, 0, len(presets))
	for _, p := range presets {
		start, err := p.Scenario.StartTime(now)
		if err != nil {
			log.Printf("PresetHandler: Skipping %s: %v", p.File, err)
			continue
		}
		out = append(out, models.PresetInfo{
			ID:       p.ID,
			Name:     p.Scenario.Name,
			File:     p.File,
			Scenario: echoScenario(p.Scenario, start),
		})
	}

	log.Printf("PresetHandler: Returning %d presets", len(out))
	c.JSON(http.StatusOK, gin.H{"presets": out})
}
