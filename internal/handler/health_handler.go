package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doclens/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	analyzerCfg *config.AnalyzerConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(analyzerCfg *config.AnalyzerConfig) *HealthHandler {
	return &HealthHandler{analyzerCfg: analyzerCfg}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
//
// The inference credential is the only dependency this service has, so
// readiness reports whether one is configured.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.analyzerCfg.APIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "analyzer API key not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
