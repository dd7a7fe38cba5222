package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datasense/models"
	"datasense/service"
)

// StatsHandler computes per-column statistics for a result set
// @Summary      Compute column statistics
// @Description  For every all-numeric column, compute count, sum, average, min, max and range, rounded to two decimals
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      models.StatsRequest  true  "Result set to analyze"
// @Success      200      {object}  map[string]any       "Statistics per numeric column"
// @Failure      400      {object}  map[string]string    "No data to analyze"
// @Router       /api/stats [post]
func (h *Handlers) StatsHandler(c *gin.Context) {
	var req models.StatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if len(req.Results) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to analyze"})
		return
	}

	stats := service.ComputeStats(req.Results, req.Columns)

	c.JSON(http.StatusOK, gin.H{
		"row_count":  len(req.Results),
		"statistics": stats,
	})
}

// PercentageHandler computes a percentage distribution for one column
// @Summary      Percentage analysis
// @Description  Per-row share of the column total for numeric columns, or a value distribution for categorical columns
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      models.PercentageRequest  true  "Result set and target column"
// @Success      200      {object}  map[string]any            "Percentage rows"
// @Failure      400      {object}  map[string]string         "Invalid column or no data"
// @Router       /api/analyze/percentage [post]
func (h *Handlers) PercentageHandler(c *gin.Context) {
	var req models.PercentageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if len(req.Results) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to analyze"})
		return
	}
	if req.Column == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Column is required"})
		return
	}

	rows, err := service.PercentageAnalysis(req.Results, req.Columns, req.Column)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"column": req.Column,
		"rows":   rows,
	})
}

// TrendHandler analyzes a value column over a date column
// @Summary      Trend analysis
// @Description  Order the rows by date and report the series with its overall growth rate
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      models.TrendRequest    true  "Result set and date/value columns"
// @Success      200      {object}  models.TrendAnalysis   "Trend series"
// @Failure      400      {object}  map[string]string      "Invalid columns or no data"
// @Router       /api/analyze/trend [post]
func (h *Handlers) TrendHandler(c *gin.Context) {
	var req models.TrendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.DateColumn == "" || req.ValueColumn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_column and value_column are required"})
		return
	}

	analysis, err := service.TrendAnalysis(req.Results, req.DateColumn, req.ValueColumn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
