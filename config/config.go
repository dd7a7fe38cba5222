package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GeminiAPIKey  string
	ModelName     string
	DBDriver      string // "sqlite3" (embedded) or "sqlserver" (external)
	DBPath        string
	SchemaFile    string
	HistoryDBPath string
	OutputsDir    string
	SitesDir      string
	SQLServer     SQLServerConfig
}

type SQLServerConfig struct {
	Server   string
	Port     string
	Database string
	UserID   string
	Password string
	Encrypt  bool
}

func GetConfig() Config {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "5000"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		ModelName:     getEnv("GEMINI_MODEL", ""),
		DBDriver:      getEnv("DB_DRIVER", "sqlite3"),
		DBPath:        getEnv("DB_PATH", "./data/datasense.db"),
		SchemaFile:    getEnv("SCHEMA_FILE", "./schema.sql"),
		HistoryDBPath: getEnv("HISTORY_DB_PATH", "./data/history"),
		OutputsDir:    getEnv("OUTPUTS_DIR", "./outputs"),
		SitesDir:      getEnv("SITES_DIR", "./sites"),
		SQLServer: SQLServerConfig{
			Server:   getEnv("SQL_SERVER", ""),
			Port:     getEnv("SQL_PORT", "1433"),
			Database: getEnv("SQL_DATABASE", ""),
			UserID:   getEnv("SQL_USER", ""),
			Password: getEnv("SQL_PASSWORD", ""),
			Encrypt:  getEnv("SQL_ENCRYPT", "true") == "true",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
