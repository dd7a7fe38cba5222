package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"datasense/models"
)

func newTestStorage(t *testing.T) *ResultsStorage {
	t.Helper()
	dir := t.TempDir()
	storage, err := NewResultsStorage(filepath.Join(dir, "outputs"), filepath.Join(dir, "sites"))
	require.NoError(t, err)
	return storage
}

func sampleResult() *models.QueryResult {
	return &models.QueryResult{
		Columns: []string{"name", "salary"},
		Rows: []map[string]any{
			{"name": "Alice Johnson", "salary": 75000.0},
			{"name": "Bob Smith", "salary": nil},
		},
		RowCount: 2,
	}
}

func TestSaveResultAsCSV(t *testing.T) {
	storage := newTestStorage(t)

	filename, err := storage.SaveResultAsCSV(sampleResult())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	data, err := os.ReadFile(filepath.Join(storage.outputsDir, filename))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,salary", lines[0])
	assert.Equal(t, "Alice Johnson,75000", lines[1])
	// nil serializes as an empty field
	assert.Equal(t, "Bob Smith,", lines[2])
}

func TestSaveResultAsExcel(t *testing.T) {
	storage := newTestStorage(t)

	filename, err := storage.SaveResultAsExcel(sampleResult())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenFile(filepath.Join(storage.outputsDir, filename))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "salary"}, rows[0])
	assert.Equal(t, []string{"Alice Johnson", "75000"}, rows[1])
	// nil leaves the cell empty, and trailing empty cells are trimmed
	assert.Equal(t, []string{"Bob Smith"}, rows[2])
}

func TestGetResultFileExcelRoundTrip(t *testing.T) {
	storage := newTestStorage(t)

	filename, err := storage.SaveResultAsExcel(sampleResult())
	require.NoError(t, err)

	got, err := storage.GetResultFile(filename)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "salary"}, got.Columns)
	assert.Equal(t, 2, got.RowCount)
	assert.Equal(t, "Alice Johnson", got.Rows[0]["name"])
}

func TestSaveAndGetResultAsJSON(t *testing.T) {
	storage := newTestStorage(t)

	filename, err := storage.SaveResultAsJSON(sampleResult(), "SELECT name, salary FROM employees")
	require.NoError(t, err)

	got, err := storage.GetResultFile(filename)
	require.NoError(t, err)

	assert.Equal(t, "SELECT name, salary FROM employees", got.Query)
	assert.Equal(t, []string{"name", "salary"}, got.Columns)
	assert.Equal(t, 2, got.RowCount)
	assert.Len(t, got.Rows, got.RowCount)
}

func TestGetResultFileCSVRoundTrip(t *testing.T) {
	storage := newTestStorage(t)

	filename, err := storage.SaveResultAsCSV(sampleResult())
	require.NoError(t, err)

	got, err := storage.GetResultFile(filename)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "salary"}, got.Columns)
	assert.Equal(t, 2, got.RowCount)
	assert.Equal(t, "Alice Johnson", got.Rows[0]["name"])
}

func TestGetResultFileUnknownFormat(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.GetResultFile("export.txt")
	assert.ErrorContains(t, err, "unsupported file format")
}

func TestListResultFiles(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.SaveResultAsCSV(sampleResult())
	require.NoError(t, err)
	_, err = storage.SaveResultAsJSON(sampleResult(), "SELECT 1")
	require.NoError(t, err)
	_, err = storage.SaveResultAsExcel(sampleResult())
	require.NoError(t, err)

	// Non-result files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(storage.outputsDir, "notes.txt"), []byte("x"), 0644))

	files, err := storage.ListResultFiles()
	require.NoError(t, err)
	require.Len(t, files, 3)

	formats := []string{files[0].Format, files[1].Format, files[2].Format}
	assert.ElementsMatch(t, []string{"csv", "json", "xlsx"}, formats)
}

func TestSaveHTMLFile(t *testing.T) {
	storage := newTestStorage(t)

	filename, err := storage.SaveHTMLFile("export_123.csv", []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, "export_123.csv.html", filename)

	data, err := os.ReadFile(storage.GetHTMLFilePath(filename))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestGenerateFileNameUnique(t *testing.T) {
	storage := newTestStorage(t)

	a := storage.GenerateFileName("csv")
	b := storage.GenerateFileName("csv")
	assert.NotEqual(t, a, b)
}
