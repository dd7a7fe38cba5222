package handlers

import (
	"context"

	"datasense/models"
	"datasense/service"
)

// @title           DataSense AI API
// @version         1.0
// @description     Natural-language analytics API - translate questions into SQL with an LLM, execute them against the sample database, and export the results.

// @host      localhost:5000
// @BasePath  /

// @schemes   http

// SQLGenerator is the LLM-backed part of the pipeline.
type SQLGenerator interface {
	GenerateSQL(ctx context.Context, userPrompt string, schemaInfo string) (string, error)
	GenerateHTMLPage(resultFile *models.ResultFile, title string) (string, error)
}

// QueryExecutor runs SQL against the configured database.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, query string) (*models.QueryResult, error)
	IsConnected() bool
}

// HistoryStore persists the query history.
type HistoryStore interface {
	AppendHistory(prompt, sqlQuery string, rowCount int) (models.HistoryEntry, error)
	GetHistory() ([]models.HistoryEntry, error)
	ClearHistory() error
}

type Handlers struct {
	aiService  SQLGenerator
	database   QueryExecutor
	history    HistoryStore
	storage    *service.ResultsStorage
	schemaInfo string
}

func New(aiService SQLGenerator, database QueryExecutor, history HistoryStore, storage *service.ResultsStorage, schemaInfo string) *Handlers {
	return &Handlers{
		aiService:  aiService,
		database:   database,
		history:    history,
		storage:    storage,
		schemaInfo: schemaInfo,
	}
}
