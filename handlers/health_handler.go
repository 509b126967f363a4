package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/services"
)

type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// LivenessHandler answers as long as the process is up.
func (h *HealthHandler) LivenessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ReadinessHandler probes the document store and returns 503 while it is
// unreachable.
func (h *HealthHandler) ReadinessHandler(c *gin.Context) {
	status := h.healthService.CheckHealth(c.Request.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// DetailedHealthHandler returns the full health document regardless of
// status, for dashboards and debugging.
func (h *HealthHandler) DetailedHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.CheckHealth(c.Request.Context()))
}
