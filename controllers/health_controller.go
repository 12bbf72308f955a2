package controllers

import (
	"context"
	"net/http"
	"time"

	"careerguide/services"

	"github.com/gin-gonic/gin"
)

// HealthController serves liveness and readiness probes.
type HealthController struct {
	readiness *services.Readiness
	prober    *services.Prober
}

func NewHealthController(readiness *services.Readiness, prober *services.Prober) *HealthController {
	return &HealthController{readiness: readiness, prober: prober}
}

func (h *HealthController) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// Health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /api/health [get]
func (h *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Failure  503 {object} map[string]interface{}
// @Router   /api/ready [get]
func (h *HealthController) Ready(c *gin.Context) {
	body := gin.H{"status": "ready"}
	if h.prober != nil {
		body["provider"] = h.prober.Snapshot()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if h.readiness != nil {
		if err := h.readiness.Ready(ctx); err != nil {
			body["status"] = "not_ready"
			body["details"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}
	c.JSON(http.StatusOK, body)
}
