package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datasense/models"
)

// HistoryHandler lists the persisted query history
// @Summary      Get query history
// @Description  Get every recorded query, oldest first
// @Tags         History
// @Produce      json
// @Success      200  {object}  map[string][]models.HistoryEntry  "History entries"
// @Failure      500  {object}  map[string]string                 "Failed to load history"
// @Router       /api/history [get]
func (h *Handlers) HistoryHandler(c *gin.Context) {
	entries, err := h.history.GetHistory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// ClearHistoryHandler removes all history entries
// @Summary      Clear query history
// @Description  Remove every recorded query. This cannot be undone.
// @Tags         History
// @Produce      json
// @Success      200  {object}  map[string]string  "Confirmation"
// @Failure      500  {object}  map[string]string  "Failed to clear history"
// @Router       /api/history [delete]
func (h *Handlers) ClearHistoryHandler(c *gin.Context) {
	if err := h.history.ClearHistory(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "History cleared"})
}
