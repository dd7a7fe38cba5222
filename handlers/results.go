package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"datasense/models"
)

// ListResultFilesHandler lists all exported result files
// @Summary      List result files
// @Description  Get a list of all exported result files (JSON/CSV)
// @Tags         Results
// @Produce      json
// @Success      200  {object}  map[string][]models.ResultFileInfo  "List of result files"
// @Failure      500  {object}  map[string]string                   "Failed to list files"
// @Router       /api/results/files [get]
func (h *Handlers) ListResultFilesHandler(c *gin.Context) {
	files, err := h.storage.ListResultFiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to list files: %v", err)})
		return
	}

	if files == nil {
		files = []models.ResultFileInfo{}
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// GetResultFileHandler retrieves a specific exported file
// @Summary      Get result file
// @Description  Get the complete content of a specific exported file by filename
// @Tags         Results
// @Produce      json
// @Param        filename  path      string  true  "Result file name"
// @Success      200       {object}  models.ResultFile  "Result file content"
// @Failure      404       {object}  map[string]string  "File not found"
// @Router       /api/results/file/{filename} [get]
func (h *Handlers) GetResultFileHandler(c *gin.Context) {
	filename := c.Param("filename")

	resultFile, err := h.storage.GetResultFile(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("File not found: %v", err)})
		return
	}

	c.JSON(http.StatusOK, resultFile)
}

// GenerateHTMLHandler asks the model for an HTML page rendering a result file
// @Summary      Generate HTML page for a result
// @Description  Generate a self-contained HTML page visualizing an exported result file and save it to the sites directory
// @Tags         Results
// @Accept       json
// @Produce      json
// @Param        request  body      models.GenerateHTMLRequest  true  "Result filename and optional title"
// @Success      200      {object}  map[string]string           "Generated page filename"
// @Failure      404      {object}  map[string]string           "Result file not found"
// @Failure      500      {object}  map[string]string           "Generation failure"
// @Router       /api/results/generate-html [post]
func (h *Handlers) GenerateHTMLHandler(c *gin.Context) {
	var req models.GenerateHTMLRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Filename is required"})
		return
	}

	resultFile, err := h.storage.GetResultFile(req.Filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("File not found: %v", err)})
		return
	}

	html, err := h.aiService.GenerateHTMLPage(resultFile, req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to generate HTML: %v", err)})
		return
	}

	filename, err := h.storage.SaveHTMLFile(req.Filename, []byte(html))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save HTML: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"filename": filename, "message": "Visualization created"})
}

// ServeHTMLHandler serves a generated HTML page
// @Summary      Serve generated HTML page
// @Description  Serve a previously generated HTML visualization page
// @Tags         Results
// @Produce      html
// @Param        filename  path  string  true  "HTML file name"
// @Success      200       {string}  string             "HTML content"
// @Failure      404       {object}  map[string]string  "File not found"
// @Router       /api/results/html/{filename} [get]
func (h *Handlers) ServeHTMLHandler(c *gin.Context) {
	path := h.storage.GetHTMLFilePath(c.Param("filename"))

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.File(path)
}
