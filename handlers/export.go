package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"datasense/models"
	"datasense/service"
)

// ExportHandler writes a result set to a CSV or Excel file
// @Summary      Export results to CSV or Excel
// @Description  Save the provided result set as a CSV (default) or Excel file in the outputs directory
// @Tags         Export
// @Accept       json
// @Produce      json
// @Param        request  body      models.ExportRequest   true  "Result set to export"
// @Success      200      {object}  models.ExportResponse  "Export confirmation"
// @Failure      400      {object}  map[string]string      "No data to export"
// @Failure      500      {object}  map[string]string      "Export failure"
// @Router       /api/export [post]
func (h *Handlers) ExportHandler(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if len(req.Results) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to export"})
		return
	}

	columns := req.Columns
	if len(columns) == 0 {
		columns = service.CollectColumns(req.Results)
	}

	result := &models.QueryResult{
		Columns:  columns,
		Rows:     req.Results,
		RowCount: len(req.Results),
	}

	var filename string
	var err error
	switch strings.ToLower(req.Format) {
	case "", "csv":
		filename, err = h.storage.SaveResultAsCSV(result)
	case "excel", "xlsx":
		filename, err = h.storage.SaveResultAsExcel(result)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported export format %q", req.Format)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to export data: %v", err)})
		return
	}

	c.JSON(http.StatusOK, models.ExportResponse{
		Filename: filename,
		Message:  "Data exported",
	})
}
