package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"datasense/models"
	"datasense/validation"
)

// QueryHandler runs the full prompt-to-SQL pipeline
// @Summary      Execute natural language query
// @Description  Translate a natural-language question into SQL, validate it is read-only, execute it and return the result set
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      models.QueryRequest   true  "Natural language prompt"
// @Success      200      {object}  models.QueryResponse  "Generated SQL and results"
// @Failure      400      {object}  map[string]string     "No prompt provided"
// @Failure      500      {object}  models.QueryResponse  "Generation or execution error"
// @Router       /api/query [post]
func (h *Handlers) QueryHandler(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No prompt provided"})
		return
	}

	sqlQuery, err := h.aiService.GenerateSQL(c.Request.Context(), prompt, h.schemaInfo)
	if err != nil {
		log.Printf("Error generating SQL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := validation.ValidateReadOnly(sqlQuery); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"sql_query": sqlQuery,
			"error":     err.Error(),
		})
		return
	}

	result, err := h.database.ExecuteQuery(c.Request.Context(), sqlQuery)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"sql_query": sqlQuery,
			"error":     err.Error(),
		})
		return
	}

	if h.history != nil {
		if _, err := h.history.AppendHistory(prompt, sqlQuery, result.RowCount); err != nil {
			log.Printf("Warning: failed to record query history: %v", err)
		}
	}

	c.JSON(http.StatusOK, models.QueryResponse{
		SQLQuery: sqlQuery,
		Results:  result.Rows,
		Columns:  result.Columns,
		RowCount: result.RowCount,
	})
}

// SchemaHandler returns the schema snapshot
// @Summary      Get database schema
// @Description  Get the textual schema description used to ground SQL generation
// @Tags         Schema
// @Produce      json
// @Success      200  {object}  models.SchemaResponse  "Schema description"
// @Router       /api/schema [get]
func (h *Handlers) SchemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.SchemaResponse{Schema: h.schemaInfo})
}
