package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datasense/config"
)

func newTestDatabase(t *testing.T) *DatabaseService {
	t.Helper()

	cfg := config.Config{
		DBDriver:   "sqlite3",
		DBPath:     filepath.Join(t.TempDir(), "test.db"),
		SchemaFile: "../schema.sql",
	}

	svc, err := NewDatabaseService(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestSchemaSnapshot(t *testing.T) {
	svc := newTestDatabase(t)

	schema, err := svc.SchemaSnapshot()
	require.NoError(t, err)

	assert.Contains(t, schema, "Table: employees")
	assert.Contains(t, schema, "Table: departments")
	assert.Contains(t, schema, "- id (INTEGER) PRIMARY KEY")
	assert.Contains(t, schema, "- salary (REAL)")
}

func TestExecuteQuery(t *testing.T) {
	svc := newTestDatabase(t)

	result, err := svc.ExecuteQuery(context.Background(), "SELECT name, salary FROM employees ORDER BY id")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "salary"}, result.Columns)
	assert.Equal(t, 4, result.RowCount)
	assert.Len(t, result.Rows, result.RowCount)

	for _, row := range result.Rows {
		assert.Len(t, row, len(result.Columns))
		for _, col := range result.Columns {
			assert.Contains(t, row, col)
		}
	}

	assert.Equal(t, "Alice Johnson", result.Rows[0]["name"])
	assert.Equal(t, 75000.0, result.Rows[0]["salary"])
}

func TestExecuteQueryJoin(t *testing.T) {
	svc := newTestDatabase(t)

	result, err := svc.ExecuteQuery(context.Background(),
		`SELECT d.name AS department, COUNT(*) AS headcount
		 FROM employees e JOIN departments d ON e.department_id = d.id
		 GROUP BY d.name ORDER BY d.name`)
	require.NoError(t, err)

	assert.Equal(t, 3, result.RowCount)
	assert.Equal(t, "Engineering", result.Rows[0]["department"])
	assert.Equal(t, int64(2), result.Rows[0]["headcount"])
}

func TestExecuteQueryEmptyResult(t *testing.T) {
	svc := newTestDatabase(t)

	result, err := svc.ExecuteQuery(context.Background(), "SELECT * FROM employees WHERE salary > 1000000")
	require.NoError(t, err)

	assert.Equal(t, 0, result.RowCount)
	assert.NotNil(t, result.Rows)
	assert.Empty(t, result.Rows)
}

func TestExecuteQueryError(t *testing.T) {
	svc := newTestDatabase(t)

	_, err := svc.ExecuteQuery(context.Background(), "SELECT * FROM missing_table")
	assert.Error(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		DBDriver:   "sqlite3",
		DBPath:     filepath.Join(dir, "test.db"),
		SchemaFile: "../schema.sql",
	}

	svc, err := NewDatabaseService(cfg)
	require.NoError(t, err)
	require.NoError(t, svc.Close())

	// Reopening the same file must not re-run the seed script.
	svc, err = NewDatabaseService(cfg)
	require.NoError(t, err)
	defer svc.Close()

	result, err := svc.ExecuteQuery(context.Background(), "SELECT COUNT(*) AS n FROM employees")
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Rows[0]["n"])
}

func TestNewDatabaseServiceUnsupportedDriver(t *testing.T) {
	_, err := NewDatabaseService(config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
