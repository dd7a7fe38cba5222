package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Check the health status of the database and AI service
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":     "healthy",
		"database":   "disconnected",
		"ai_service": "ready",
	}

	if h.database != nil && h.database.IsConnected() {
		status["database"] = "connected"
	}

	c.JSON(http.StatusOK, status)
}
