package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/microsoft/go-mssqldb"

	"datasense/config"
	"datasense/models"
)

// DatabaseService executes queries against the configured relational
// database: the embedded sqlite file by default, or an external SQL Server
// when DB_DRIVER=sqlserver.
type DatabaseService struct {
	db     *sql.DB
	driver string
}

func NewDatabaseService(cfg config.Config) (*DatabaseService, error) {
	var dsn string

	switch cfg.DBDriver {
	case "sqlite3":
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dsn = cfg.DBPath
	case "sqlserver":
		if cfg.SQLServer.Server == "" || cfg.SQLServer.Database == "" {
			return nil, fmt.Errorf("SQL Server configuration is incomplete")
		}
		dsn = buildSQLServerConnString(cfg.SQLServer)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := sql.Open(cfg.DBDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		if cfg.DBDriver == "sqlite3" {
			db.Close()
			return nil, fmt.Errorf("failed to open embedded database: %w", err)
		}
		// External server may be temporarily unreachable; start anyway.
		log.Printf("Warning: failed to ping database during initialization: %v", err)
	}

	s := &DatabaseService{db: db, driver: cfg.DBDriver}

	if cfg.DBDriver == "sqlite3" && cfg.SchemaFile != "" {
		if err := s.seed(cfg.SchemaFile); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return s, nil
}

func buildSQLServerConnString(cfg config.SQLServerConfig) string {
	connStr := fmt.Sprintf("server=%s;port=%s;database=%s",
		cfg.Server, cfg.Port, cfg.Database)

	if cfg.UserID != "" {
		connStr += fmt.Sprintf(";user id=%s;password=%s", cfg.UserID, cfg.Password)
	} else {
		connStr += ";trusted_connection=true"
	}

	if cfg.Encrypt {
		connStr += ";encrypt=true;TrustServerCertificate=true"
	} else {
		connStr += ";encrypt=false"
	}

	return connStr
}

func (s *DatabaseService) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *DatabaseService) IsConnected() bool {
	if s.db == nil {
		return false
	}
	return s.db.Ping() == nil
}

// seed loads the schema/sample-data script once, keyed on the employees
// table existing.
func (s *DatabaseService) seed(schemaFile string) error {
	var name string
	err := s.db.QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name='employees'`).Scan(&name)
	if err == nil {
		return nil // already seeded
	}
	if err != sql.ErrNoRows {
		return err
	}

	script, err := os.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := s.db.Exec(string(script)); err != nil {
		return fmt.Errorf("failed to execute schema script: %w", err)
	}

	log.Printf("Seeded database from %s", schemaFile)
	return nil
}

// SchemaSnapshot builds the textual schema description shown to the model
// and the user:
//
//	Table: employees
//	  - id (INTEGER) PRIMARY KEY
//	  - name (TEXT)
func (s *DatabaseService) SchemaSnapshot() (string, error) {
	switch s.driver {
	case "sqlite3":
		return s.sqliteSchema()
	case "sqlserver":
		return s.sqlServerSchema()
	}
	return "", fmt.Errorf("unsupported database driver %q", s.driver)
}

func (s *DatabaseService) sqliteSchema() (string, error) {
	rows, err := s.db.Query(
		`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return "", fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, table := range tables {
		b.WriteString(fmt.Sprintf("\nTable: %s\n", table))

		colRows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
		if err != nil {
			return "", fmt.Errorf("failed to describe table %s: %w", table, err)
		}

		for colRows.Next() {
			var cid int
			var name, colType string
			var notNull, pk int
			var dflt sql.NullString
			if err := colRows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
				colRows.Close()
				return "", err
			}
			suffix := ""
			if pk > 0 {
				suffix = " PRIMARY KEY"
			}
			b.WriteString(fmt.Sprintf("  - %s (%s)%s\n", name, colType, suffix))
		}
		if err := colRows.Err(); err != nil {
			colRows.Close()
			return "", err
		}
		colRows.Close()
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func (s *DatabaseService) sqlServerSchema() (string, error) {
	rows, err := s.db.Query(
		`SELECT TABLE_NAME, COLUMN_NAME, DATA_TYPE
		 FROM INFORMATION_SCHEMA.COLUMNS
		 ORDER BY TABLE_NAME, ORDINAL_POSITION`)
	if err != nil {
		return "", fmt.Errorf("failed to read schema: %w", err)
	}
	defer rows.Close()

	var b strings.Builder
	lastTable := ""
	for rows.Next() {
		var table, column, dataType string
		if err := rows.Scan(&table, &column, &dataType); err != nil {
			return "", err
		}
		if table != lastTable {
			b.WriteString(fmt.Sprintf("\nTable: %s\n", table))
			lastTable = table
		}
		b.WriteString(fmt.Sprintf("  - %s (%s)\n", column, dataType))
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// ExecuteQuery runs one statement and returns the rows as column-keyed
// mappings, with values normalized for JSON serialization.
func (s *DatabaseService) ExecuteQuery(ctx context.Context, query string) (*models.QueryResult, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := []map[string]any{}

	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.QueryResult{
		Columns:  columns,
		Rows:     results,
		RowCount: len(results),
	}, nil
}

// normalizeValue converts driver-specific scan results into plain JSON
// friendly values.
func normalizeValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return v
	}
}
