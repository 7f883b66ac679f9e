package handlers

import (
	"net/http"
	"time"

	"oper-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ServiceName is reported by the health endpoint
const ServiceName = "oper-review-backend"

// HealthHandler handles health check endpoints
type HealthHandler struct {
	service service.HealthServiceInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service service.HealthServiceInterface) *HealthHandler {
	return &HealthHandler{
		service: service,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"oper-review-backend"`
	Error   string `json:"error,omitempty"`
}

// Health records a health row and reports the service status
// @Summary Health check
// @Description Append a row to the health table and report whether the database accepted it
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.service.Check(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "unhealthy",
			Service: ServiceName,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: ServiceName,
	})
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services := map[string]string{"database": "ready"}
	ready := true

	if err := h.service.Ready(c.Request.Context()); err != nil {
		ready = false
		services["database"] = "not ready: " + err.Error()
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	// If we can respond, we're alive
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
