package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"datasense/ai"
	"datasense/cache"
	"datasense/config"
	"datasense/db"
	_ "datasense/docs" // Swagger docs
	"datasense/handlers"
	"datasense/service"
)

func main() {
	cfg := config.GetConfig()

	// Relational database (embedded sqlite by default)
	database, err := service.NewDatabaseService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Schema snapshot, held for the lifetime of the process
	schemaInfo, err := database.SchemaSnapshot()
	if err != nil {
		log.Fatalf("Failed to read database schema: %v", err)
	}

	// Query history store
	historyDB, err := db.New(cfg.HistoryDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize history store: %v", err)
	}
	defer historyDB.Close()

	// Prompt cache
	appCache := cache.New()

	// Gemini AI client
	aiService, err := ai.New(cfg.GeminiAPIKey, cfg.ModelName, appCache)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}
	defer aiService.Close()

	// Export storage
	storage, err := service.NewResultsStorage(cfg.OutputsDir, cfg.SitesDir)
	if err != nil {
		log.Fatalf("Failed to initialize results storage: %v", err)
	}

	h := handlers.New(aiService, database, historyDB, storage, schemaInfo)

	r := gin.Default()

	// The browser UI runs on its own dev server, so allow every origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsCfg))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes
	r.GET("/health", h.HealthHandler)
	r.GET("/api/schema", h.SchemaHandler)
	r.POST("/api/query", h.QueryHandler)
	r.POST("/api/export", h.ExportHandler)
	r.POST("/api/stats", h.StatsHandler)
	r.POST("/api/analyze/percentage", h.PercentageHandler)
	r.POST("/api/analyze/trend", h.TrendHandler)
	r.GET("/api/history", h.HistoryHandler)
	r.DELETE("/api/history", h.ClearHistoryHandler)

	// Result file routes
	r.GET("/api/results/files", h.ListResultFilesHandler)
	r.GET("/api/results/file/:filename", h.GetResultFileHandler)
	r.POST("/api/results/generate-html", h.GenerateHTMLHandler)
	r.GET("/api/results/html/:filename", h.ServeHTMLHandler)

	log.Printf("Using model: %s", aiService.ModelName())
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
